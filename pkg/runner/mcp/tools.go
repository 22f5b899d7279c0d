package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/moods/pkg/mood"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerLogMoodTool(srv, svc)
	registerListMoodsTool(srv, svc)
	registerMoodTrendTool(srv, svc)
	registerMoodSummaryTool(srv, svc)
	registerGetMoodTool(srv, svc)
}

func registerLogMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"log_mood",
		mcp.WithDescription("Log today's mood. Logging again on the same day replaces the earlier entry."),
		mcp.WithString("mood",
			mcp.Required(),
			mcp.Description("Mood for today."),
			mcp.Enum(mood.Names()...),
		),
		mcp.WithString("note",
			mcp.Description("Optional note about the day."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Mood string `json:"mood"`
			Note string `json:"note"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.LogMood(ctx, args.Mood, args.Note)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListMoodsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_moods",
		mcp.WithDescription("List logged moods, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default all)."),
			mcp.Min(0),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := request.GetInt("limit", 0)
		results, err := svc.ListMoods(ctx, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerMoodTrendTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mood_trend",
		mcp.WithDescription("Describe the mood trend chart over the most recent entries, oldest first."),
		mcp.WithNumber("window",
			mcp.Description("Number of recent entries to chart (default 7)."),
			mcp.Min(1),
			mcp.Max(366),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		spec, err := svc.Trend(ctx, request.GetInt("window", 0))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(spec)
	})
}

func registerMoodSummaryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"mood_summary",
		mcp.WithDescription("Count logged entries per mood along with visit totals."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		sum, err := svc.Summary(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(sum)
	})
}

func registerGetMoodTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_mood",
		mcp.WithDescription("Fetch the entry logged on a calendar date."),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Calendar date, e.g. 2024-01-31."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		date, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		dto, err := svc.EntryByDate(ctx, date)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
