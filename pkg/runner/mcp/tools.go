package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(srv *server.MCPServer, svc *Service) {
	registerCreateEntryTool(srv, svc)
	registerUpdateEntryTool(srv, svc)
	registerRemoveEntryTool(srv, svc)
	registerConvertEntryTool(srv, svc)
	registerRescheduleEntryTool(srv, svc)
	registerListEntriesTool(srv, svc)
	registerListTabsTool(srv, svc)
	registerSearchEntriesTool(srv, svc)
	registerGetEntryTool(srv, svc)
	registerCalendarTool(srv, svc)
}

func registerCreateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"create_entry",
		mcp.WithDescription("Record a travel memory or plan a future trip."),
		mcp.WithString("type",
			mcp.Required(),
			mcp.Description("memory for a past trip, planned for a future one."),
			mcp.Enum("memory", "planned"),
		),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Where the trip is."),
		),
		mcp.WithString("date",
			mcp.Description("Day as YYYY-MM-DD, or today, tomorrow, yesterday, +3d. Required for memories."),
		),
		mcp.WithString("description",
			mcp.Description("Free text notes."),
		),
		mcp.WithString("category",
			mcp.Description("Kind of place."),
			mcp.Enum("city", "mountain", "beach", "nature", "other"),
		),
		mcp.WithString("mood",
			mcp.Description("How the trip felt. Ignored for planned entries."),
			mcp.Enum("super", "ok", "bad", "none"),
		),
		mcp.WithString("budget",
			mcp.Description("Non-negative amount spent or expected."),
		),
		mcp.WithString("tags",
			mcp.Description("Comma separated tags."),
		),
		mcp.WithArray("photos",
			mcp.Description("Image URLs or data URLs to attach, in order."),
			mcp.WithStringItems(),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Type        string   `json:"type"`
			Location    string   `json:"location"`
			Date        string   `json:"date"`
			Description string   `json:"description"`
			Category    string   `json:"category"`
			Mood        string   `json:"mood"`
			Budget      string   `json:"budget"`
			Tags        string   `json:"tags"`
			Photos      []string `json:"photos"`
		}

		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		dto, err := svc.AddEntry(ctx, AddEntryOptions{
			Type:        args.Type,
			Location:    args.Location,
			Date:        args.Date,
			Description: args.Description,
			Category:    args.Category,
			Mood:        args.Mood,
			Budget:      args.Budget,
			Tags:        args.Tags,
			Photos:      args.Photos,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return toJSONResult(dto)
	})
}

func registerUpdateEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"update_entry",
		mcp.WithDescription("Change fields of an entry. Omitted fields are kept."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to modify."),
		),
		mcp.WithString("location", mcp.Description("New location.")),
		mcp.WithString("date", mcp.Description("New day, YYYY-MM-DD.")),
		mcp.WithString("description", mcp.Description("New description.")),
		mcp.WithString("category",
			mcp.Description("New category."),
			mcp.Enum("city", "mountain", "beach", "nature", "other"),
		),
		mcp.WithString("mood",
			mcp.Description("New mood."),
			mcp.Enum("super", "ok", "bad", "none"),
		),
		mcp.WithString("budget", mcp.Description("New budget; empty clears it.")),
		mcp.WithString("tags", mcp.Description("Comma separated tags replacing the current ones.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			ID          string  `json:"id"`
			Location    *string `json:"location"`
			Date        *string `json:"date"`
			Description *string `json:"description"`
			Category    *string `json:"category"`
			Mood        *string `json:"mood"`
			Budget      *string `json:"budget"`
			Tags        *string `json:"tags"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.ID == "" {
			return mcp.NewToolResultError("id is required"), nil
		}

		dto, err := svc.UpdateEntry(ctx, args.ID, UpdateEntryOptions{
			Location:    args.Location,
			Date:        args.Date,
			Description: args.Description,
			Category:    args.Category,
			Mood:        args.Mood,
			Budget:      args.Budget,
			Tags:        args.Tags,
		})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRemoveEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"remove_entry",
		mcp.WithDescription("Delete an entry. Unknown ids are ignored."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to delete."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if err := svc.RemoveEntry(ctx, id); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]string{"removed": id})
	})
}

func registerConvertEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"convert_to_memory",
		mcp.WithDescription("Mark a planned trip as done. Undated plans are dated today."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to convert."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.ConvertEntry(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerRescheduleEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"reschedule_entry",
		mcp.WithDescription("Move an entry to another day."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to move."),
		),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("New day as YYYY-MM-DD."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		day, err := request.RequireString("date")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.RescheduleEntry(ctx, id, day)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerListEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_entries",
		mcp.WithDescription("List entries of one tab or both, narrowed by optional filters."),
		mcp.WithString("tab",
			mcp.Description("memory, planned or all (default)."),
			mcp.Enum("memory", "planned", "all"),
		),
		mcp.WithString("q", mcp.Description("Case-insensitive text matched against location and description.")),
		mcp.WithString("category", mcp.Description("Category filter, or all.")),
		mcp.WithString("mood", mcp.Description("Mood filter for memories, or all.")),
		mcp.WithString("tag", mcp.Description("Tag substring.")),
		mcp.WithNumber("budget_min", mcp.Description("Lowest budget; entries without a budget are excluded.")),
		mcp.WithNumber("budget_max", mcp.Description("Highest budget; entries without a budget are excluded.")),
		mcp.WithString("date", mcp.Description("Only entries on this day.")),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args struct {
			Tab       string   `json:"tab"`
			Q         string   `json:"q"`
			Category  string   `json:"category"`
			Mood      string   `json:"mood"`
			Tag       string   `json:"tag"`
			BudgetMin *float64 `json:"budget_min"`
			BudgetMax *float64 `json:"budget_max"`
			Date      string   `json:"date"`
		}
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		results, err := svc.ListEntries(ctx, ListOptions(args))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tab":     strings.TrimSpace(args.Tab),
			"entries": results,
			"count":   len(results),
		})
	})
}

func registerListTabsTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"list_tabs",
		mcp.WithDescription("Summarize the memory and planned tabs."),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		summaries, err := svc.ListTabs(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"tabs":  summaries,
			"count": len(summaries),
		})
	})
}

func registerSearchEntriesTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"search_entries",
		mcp.WithDescription("Search both tabs by substring match across locations and descriptions."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Case-insensitive search text."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return (default 20)."),
			mcp.Min(1),
			mcp.Max(100),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query, err := request.RequireString("query")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		limit := request.GetInt("limit", 20)

		results, err := svc.SearchEntries(ctx, query, limit)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(map[string]any{
			"query":   query,
			"limit":   limit,
			"results": results,
			"count":   len(results),
		})
	})
}

func registerGetEntryTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"get_entry",
		mcp.WithDescription("Fetch a single entry by identifier."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Entry identifier to fetch."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := request.RequireString("id")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(dto)
	})
}

func registerCalendarTool(srv *server.MCPServer, svc *Service) {
	tool := mcp.NewTool(
		"calendar_month",
		mcp.WithDescription("Per-day entry counts for one month of a tab."),
		mcp.WithString("tab",
			mcp.Description("memory (default) or planned."),
			mcp.Enum("memory", "planned"),
		),
		mcp.WithString("month",
			mcp.Description("Month as YYYY-MM; defaults to the current month."),
		),
	)

	srv.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month, err := svc.Month(ctx, request.GetString("tab", ""), request.GetString("month", ""))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return toJSONResult(month)
	})
}

func toJSONResult(data any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("marshal error: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
