package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/steuerpilot/steuerpilot/internal/document"
	"github.com/steuerpilot/steuerpilot/internal/registry"
)

// registerTools wires the wizard tools into the MCP server.
func (s *Server) registerTools() error {
	s.mcpServer.AddTool(
		mcp.NewTool("progress",
			mcp.WithDescription("Overall interview progress plus per-category completion counts"),
		),
		s.handleProgress,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("current-screen",
			mcp.WithDescription("The screen the wizard is currently on, including its type and form fields"),
		),
		s.handleCurrentScreen,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("answer-yesno",
			mcp.WithDescription("Answer the current yes/no gate and advance the wizard"),
			mcp.WithBoolean("answer", mcp.Required(),
				mcp.Description("true for yes, false for no"),
			),
		),
		s.handleAnswerYesNo,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("goto-screen",
			mcp.WithDescription("Jump the wizard to a named screen"),
			mcp.WithString("name", mcp.Required(),
				mcp.Description("Screen name from list-topics or progress output"),
			),
		),
		s.handleGotoScreen,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("list-topics",
			mcp.WithDescription("Per-topic answer status of the return document"),
		),
		s.handleListTopics,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("tax-estimate",
			mcp.WithDescription("Rough tax estimate for the current document"),
		),
		s.handleTaxEstimate,
	)

	return nil
}

func (s *Server) handleProgress(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type catProgress struct {
		Name  string `json:"name"`
		Title string `json:"title"`
		Done  int    `json:"done"`
		Total int    `json:"total"`
	}
	done, total := s.engine.Progress()
	out := struct {
		Done       int           `json:"done"`
		Total      int           `json:"total"`
		Categories []catProgress `json:"categories"`
	}{Done: done, Total: total}

	for _, c := range s.engine.Registry().Categories() {
		cd, ct := s.engine.CategoryProgress(c.Name)
		out.Categories = append(out.Categories, catProgress{
			Name:  c.Name,
			Title: c.Title,
			Done:  cd,
			Total: ct,
		})
	}
	return jsonResult(out)
}

func (s *Server) handleCurrentScreen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cur := s.engine.Current()
	if cur == nil {
		return mcp.NewToolResultError("wizard has no current screen"), nil
	}

	type field struct {
		Name  string `json:"name"`
		Label string `json:"label"`
		Value string `json:"value"`
	}
	out := struct {
		Name     string  `json:"name"`
		Title    string  `json:"title"`
		Type     string  `json:"type"`
		Category string  `json:"category"`
		Help     string  `json:"help,omitempty"`
		Items    int     `json:"items,omitempty"`
		Fields   []field `json:"fields,omitempty"`
	}{
		Name:     cur.Name,
		Title:    cur.Title,
		Type:     cur.Type.String(),
		Category: cur.Category,
		Help:     cur.Help,
	}

	doc := s.engine.Document()
	if cur.Array != nil {
		out.Items = cur.Array.Len(doc)
	}
	if len(cur.Fields) > 0 {
		var value any
		switch cur.Type {
		case registry.ArrayForm:
			value, _ = s.engine.Item()
		default:
			value = cur.Topic.DataAny(doc)
		}
		if value != nil {
			for _, f := range cur.Fields {
				out.Fields = append(out.Fields, field{Name: f.Name, Label: f.Label, Value: f.Get(value)})
			}
		}
	}
	return jsonResult(out)
}

func (s *Server) handleAnswerYesNo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}
	answer, ok := args["answer"].(bool)
	if !ok {
		return mcp.NewToolResultError("answer parameter must be a boolean"), nil
	}

	if err := s.engine.SubmitYesNo(answer); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("answered, now on screen %s", s.engine.Current().Name)), nil
}

func (s *Server) handleGotoScreen(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return mcp.NewToolResultError("name parameter must be a non-empty string"), nil
	}

	if err := s.engine.SetScreen(name); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("now on screen %s", name)), nil
}

func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	type topicStatus struct {
		Key      string `json:"key"`
		Answered bool   `json:"answered"`
		Started  bool   `json:"started"`
		Finished bool   `json:"finished"`
		Items    int    `json:"items,omitempty"`
	}

	doc := s.engine.Document()
	var out []topicStatus
	for _, acc := range document.All {
		st := topicStatus{Key: acc.Key()}
		if start := acc.Start(doc); start != nil {
			st.Answered = true
			st.Started = *start
		}
		if fin := acc.Finished(doc); fin != nil && *fin {
			st.Finished = true
		}
		if arr, ok := acc.(document.ArrayAccess); ok {
			st.Items = arr.Len(doc)
		}
		out = append(out, st)
	}
	return jsonResult(out)
}

func (s *Server) handleTaxEstimate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if s.calc == nil {
		return mcp.NewToolResultError("no calculator configured"), nil
	}
	return jsonResult(s.calc.Calculate(s.engine.Document()))
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
