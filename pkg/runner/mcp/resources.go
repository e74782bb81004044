package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerTabsResource(srv, svc)
	registerTabTemplate(srv, svc)
	registerEntryTemplate(srv, svc)
}

func registerTabsResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"travlog://tabs",
		"Tabs",
		mcp.WithResourceDescription("The memory and planned tabs with counts."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		summaries, err := svc.ListTabs(ctx)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"tabs":  summaries,
			"count": len(summaries),
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerTabTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"travlog://tabs/{tab}",
		"Tab Entries",
		mcp.WithTemplateDescription("Entries on the memory or planned tab."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		tab := argument(request, "tab")
		if tab == "" {
			return nil, fmt.Errorf("tab is required")
		}

		entries, err := svc.ListEntries(ctx, ListOptions{Tab: tab})
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"tab":     tab,
			"count":   len(entries),
			"entries": entries,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

func registerEntryTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"travlog://entries/{id}",
		"Entry Details",
		mcp.WithTemplateDescription("Detailed information about a single entry."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		id := argument(request, "id")
		if id == "" {
			return nil, fmt.Errorf("entry id is required")
		}

		dto, err := svc.EntryByID(ctx, id)
		if err != nil {
			return nil, err
		}

		payload := map[string]any{
			"entry": dto,
		}
		return encodeResourceJSON(request.Params.URI, payload)
	})
}

// argument reads a URI template variable, which the server may hand over
// as a string or a single-element list.
func argument(request mcp.ReadResourceRequest, name string) string {
	switch v := request.Params.Arguments[name].(type) {
	case string:
		return v
	case []string:
		if len(v) > 0 {
			return v[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
