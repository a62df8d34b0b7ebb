package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kalambet/clerk/internal/dataset"
	"github.com/kalambet/clerk/internal/tools"
)

// MCPDeps holds dependencies for the MCP server.
type MCPDeps struct {
	Tools *tools.Toolset
	Data  *dataset.Snapshot
}

// NewMCPServer creates an MCP server exposing the retail tools and the
// dataset stats resource. Tool results are returned as JSON so MCP clients
// can do their own rendering.
func NewMCPServer(deps MCPDeps) *server.MCPServer {
	s := server.NewMCPServer(
		"clerk",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithInstructions("clerk — retail operations assistant for inventory, customer, and order lookups."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool("check_inventory",
			mcp.WithDescription("Check product availability by name, optionally narrowed to a single size."),
			mcp.WithString("product_name", mcp.Description("Product name or brand to search for"), mcp.Required()),
			mcp.WithString("size", mcp.Description("Optional size to check stock for")),
		),
		mcpCheckInventory(deps),
	)

	s.AddTool(
		mcp.NewTool("get_customer_info",
			mcp.WithDescription("Look up a customer profile by name, including tier and purchase history."),
			mcp.WithString("customer_name", mcp.Description("Customer name to search for"), mcp.Required()),
		),
		mcpCustomerInfo(deps),
	)

	s.AddTool(
		mcp.NewTool("get_order_status",
			mcp.WithDescription("Look up order status by order id, or list a customer's orders by name. Provide at least one."),
			mcp.WithString("order_id", mcp.Description("Order id, e.g. ORD-001")),
			mcp.WithString("customer_name", mcp.Description("Customer name to list orders for")),
		),
		mcpOrderStatus(deps),
	)

	s.AddResource(
		mcp.NewResource(
			"retail://stats",
			"Dataset Stats",
			mcp.WithResourceDescription("Counts of products, customers, and orders in the loaded dataset"),
			mcp.WithMIMEType("application/json"),
		),
		mcpResourceStats(deps),
	)

	return s
}

func mcpCheckInventory(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		productName, err := req.RequireString("product_name")
		if err != nil {
			return mcpError("product_name is required"), nil
		}
		size := req.GetString("size", "")

		return mcpResult(deps.Tools.CheckInventory(productName, size))
	}
}

func mcpCustomerInfo(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		customerName, err := req.RequireString("customer_name")
		if err != nil {
			return mcpError("customer_name is required"), nil
		}

		return mcpResult(deps.Tools.CustomerInfo(customerName))
	}
}

func mcpOrderStatus(deps MCPDeps) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		orderID := req.GetString("order_id", "")
		customerName := req.GetString("customer_name", "")
		if orderID == "" && customerName == "" {
			return mcpError("provide order_id or customer_name"), nil
		}

		return mcpResult(deps.Tools.OrderStatus(orderID, customerName))
	}
}

func mcpResourceStats(deps MCPDeps) server.ResourceHandlerFunc {
	return func(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		b, err := json.Marshal(deps.Data.Stats())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal stats: %w", err)
		}

		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(b),
			},
		}, nil
	}
}

// mcpResult serializes a tool result as JSON text. Not-found results come
// back as MCP errors so clients can branch on them.
func mcpResult(res tools.Result) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(res)
	if err != nil {
		return mcpError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	if res.Kind == tools.KindNotFound {
		return mcpError(string(b)), nil
	}
	return mcpText(string(b)), nil
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
