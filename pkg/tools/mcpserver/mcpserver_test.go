package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/germanamz/scicalc/pkg/tools/calctools"
	"github.com/germanamz/scicalc/pkg/tools/toolbox"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoHandler(_ context.Context, input json.RawMessage) (string, error) {
	return string(input), nil
}

func errorHandler(_ context.Context, _ json.RawMessage) (string, error) {
	return "", errors.New("tool failed")
}

// setupTestClient starts a server over in-memory transports and returns a
// connected client session. The server stops on test cleanup.
func setupTestClient(t *testing.T, tb *toolbox.ToolBox) *mcp.ClientSession {
	t.Helper()

	s := New("test-server", "1.0.0", nil)
	s.Register(tb)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	serverDone := make(chan error, 1)
	go func() {
		serverDone <- s.run(ctx, serverTransport)
	}()
	t.Cleanup(func() {
		cancel()
		<-serverDone
	})

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func calculatorBox() *toolbox.ToolBox {
	return calctools.New(calctools.NewSessions()).Tools()
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.Len(t, result.Content, 1)
	tc, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)

	return tc.Text
}

func TestListTools(t *testing.T) {
	session := setupTestClient(t, calculatorBox())

	result, err := session.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make(map[string]bool, len(result.Tools))
	for _, tool := range result.Tools {
		names[tool.Name] = true
		assert.NotEmpty(t, tool.Description)
	}
	assert.True(t, names["calculate"])
	assert.True(t, names["press"])
	assert.True(t, names["clear"])
}

func TestCalculate(t *testing.T) {
	session := setupTestClient(t, calculatorBox())

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "calculate",
		Arguments: map[string]any{"tokens": []string{"2", "*", "pi", "="}},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"display":"6.283185307179586","errored":false}`, textOf(t, result))
}

func TestPressAcrossCalls(t *testing.T) {
	session := setupTestClient(t, calculatorBox())
	ctx := context.Background()

	_, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "press",
		Arguments: map[string]any{"session": "s1", "tokens": []string{"1", "0", "/"}},
	})
	require.NoError(t, err)

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name:      "press",
		Arguments: map[string]any{"session": "s1", "tokens": []string{"0", "="}},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"display":"Error","errored":true}`, textOf(t, result))
}

func TestUnknownTokenIsToolError(t *testing.T) {
	session := setupTestClient(t, calculatorBox())

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "calculate",
		Arguments: map[string]any{"tokens": []string{"1", "^"}},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "unknown token")
}

func TestToolCallSuccess(t *testing.T) {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{Name: "echo", Description: "Echo", Handler: echoHandler})
	session := setupTestClient(t, tb)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"msg": "hello"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"msg":"hello"}`, textOf(t, result))
}

func TestToolCallHandlerError(t *testing.T) {
	tb := toolbox.New()
	tb.Register(toolbox.Tool{Name: "fail", Description: "Always fails", Handler: errorHandler})
	session := setupTestClient(t, tb)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "fail",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "tool failed", textOf(t, result))
}

func TestToolCallNotFound(t *testing.T) {
	session := setupTestClient(t, toolbox.New())

	_, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "missing",
		Arguments: map[string]any{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestContextCancellation(t *testing.T) {
	s := New("srv", "1.0.0", nil)
	serverTransport, _ := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.run(ctx, serverTransport)
	assert.ErrorIs(t, err, context.Canceled)
}
