package server

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func dateRangeTool(name, description string) mcp.Tool {
	return mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithString("start_date", mcp.Required(), mcp.Description("Start date in YYYY-MM-DD format")),
		mcp.WithString("end_date", mcp.Required(), mcp.Description("End date in YYYY-MM-DD format")),
	)
}

// Tools returns the operation catalog in protocol order.
func Tools() []mcp.Tool {
	return []mcp.Tool{
		dateRangeTool(OpGetSteps,
			"Get the total step count over a date range."),
		dateRangeTool(OpGetHeartRate,
			"Get heart rate samples over a date range, with average/min/max and the most recent readings."),
		dateRangeTool(OpGetSleep,
			"Get sleep sessions over a date range, with total sleeping hours per stage classification."),
		dateRangeTool(OpGetActiveEnergy,
			"Get the total active energy burned (kcal) over a date range."),
		dateRangeTool(OpGetHealthSummary,
			"Get a combined summary of steps, active energy, heart rate and sleep over a date range."),
	}
}
