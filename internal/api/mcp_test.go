package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kalambet/clerk/internal/tools"
)

func newTestMCPDeps() MCPDeps {
	data := apiTestSnapshot()
	return MCPDeps{
		Tools: tools.NewToolset(data),
		Data:  data,
	}
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("no content in result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return tc.Text
}

func makeCallToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPTool_CheckInventory(t *testing.T) {
	handler := mcpCheckInventory(newTestMCPDeps())

	req := makeCallToolRequest("check_inventory", map[string]interface{}{
		"product_name": "nike",
		"size":         "9",
	})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error: %s", toolText(t, result))
	}

	var res tools.Result
	if err := json.Unmarshal([]byte(toolText(t, result)), &res); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if res.Kind != tools.KindInventory {
		t.Errorf("kind = %q, want inventory", res.Kind)
	}
	if len(res.Products) != 1 || res.Products[0].Stock != 12 {
		t.Errorf("products = %+v", res.Products)
	}
}

func TestMCPTool_CheckInventory_MissingProductName(t *testing.T) {
	handler := mcpCheckInventory(newTestMCPDeps())

	req := makeCallToolRequest("check_inventory", map[string]interface{}{})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for missing product_name")
	}
}

func TestMCPTool_CustomerInfo(t *testing.T) {
	handler := mcpCustomerInfo(newTestMCPDeps())

	req := makeCallToolRequest("get_customer_info", map[string]interface{}{
		"customer_name": "jane",
	})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error: %s", toolText(t, result))
	}

	var res tools.Result
	if err := json.Unmarshal([]byte(toolText(t, result)), &res); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if res.Kind != tools.KindCustomer || res.Customer == nil || res.Customer.ID != "CUST-001" {
		t.Errorf("result = %+v", res)
	}
}

func TestMCPTool_CustomerInfo_NotFound(t *testing.T) {
	handler := mcpCustomerInfo(newTestMCPDeps())

	req := makeCallToolRequest("get_customer_info", map[string]interface{}{
		"customer_name": "nobody",
	})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result for unknown customer")
	}
}

func TestMCPTool_OrderStatus_ByID(t *testing.T) {
	handler := mcpOrderStatus(newTestMCPDeps())

	req := makeCallToolRequest("get_order_status", map[string]interface{}{
		"order_id": "ORD-001",
	})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected error: %s", toolText(t, result))
	}

	var res tools.Result
	if err := json.Unmarshal([]byte(toolText(t, result)), &res); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if res.Kind != tools.KindOrder || res.Order == nil || res.Order.Status != "Shipped" {
		t.Errorf("result = %+v", res)
	}
}

func TestMCPTool_OrderStatus_RequiresArgument(t *testing.T) {
	handler := mcpOrderStatus(newTestMCPDeps())

	req := makeCallToolRequest("get_order_status", map[string]interface{}{})

	result, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected error result when neither argument is provided")
	}
}

func TestMCPResource_Stats(t *testing.T) {
	handler := mcpResourceStats(newTestMCPDeps())

	req := mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "retail://stats"},
	}

	contents, err := handler(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(contents))
	}

	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected TextResourceContents, got %T", contents[0])
	}

	var stats map[string]int
	if err := json.Unmarshal([]byte(tc.Text), &stats); err != nil {
		t.Fatalf("failed to parse stats: %v", err)
	}
	if stats["products"] != 1 || stats["customers"] != 1 || stats["orders"] != 1 {
		t.Errorf("stats = %+v", stats)
	}
}
