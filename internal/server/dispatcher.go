// Package server exposes the query pipeline over the Model Context
// Protocol: a dispatcher mapping operation names to query calls, the tool
// catalog, and the stdio server wiring.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/openvitals/vitals-mcp/internal/health"
	"github.com/openvitals/vitals-mcp/internal/models"
	"github.com/openvitals/vitals-mcp/internal/render"
)

// Operation names in the tool catalog.
const (
	OpGetSteps         = "get_steps"
	OpGetHeartRate     = "get_heart_rate"
	OpGetSleep         = "get_sleep"
	OpGetActiveEnergy  = "get_active_energy"
	OpGetHealthSummary = "get_health_summary"
)

// ErrUnknownOperation is returned for operation names outside the catalog.
var ErrUnknownOperation = errors.New("unknown operation")

// ToolResult is the sole externally observable artifact of a request.
type ToolResult struct {
	Text    string
	IsError bool
}

// Dispatcher maps an invocation (operation name plus string arguments) to
// the matching query call and renders the outcome. Every failure at any
// step is converted into an error ToolResult; no error escapes this
// boundary unformatted.
type Dispatcher struct {
	svc *health.Service
}

// NewDispatcher creates a dispatcher on the given query service.
func NewDispatcher(svc *health.Service) *Dispatcher {
	return &Dispatcher{svc: svc}
}

// Dispatch handles one tool invocation.
func (d *Dispatcher) Dispatch(ctx context.Context, operation string, args map[string]string) ToolResult {
	requestID := uuid.NewString()
	log.Printf("dispatch %s request_id=%s start=%q end=%q",
		operation, requestID, args["start_date"], args["end_date"])

	text, err := d.handle(ctx, operation, args)
	if err != nil {
		log.Printf("dispatch %s request_id=%s error: %v", operation, requestID, err)
		return ToolResult{Text: "Error: " + err.Error(), IsError: true}
	}
	return ToolResult{Text: text}
}

func (d *Dispatcher) handle(ctx context.Context, operation string, args map[string]string) (string, error) {
	// Date extraction and parsing happen before the operation name is
	// checked, so a malformed date wins over an unknown operation.
	startText, endText := args["start_date"], args["end_date"]
	if startText == "" || endText == "" {
		return "", models.ErrInvalidDateFormat
	}
	window, err := models.ParseDateRange(startText, endText)
	if err != nil {
		return "", err
	}

	switch operation {
	case OpGetSteps:
		metric, err := d.svc.QuerySteps(ctx, window)
		if err != nil {
			return "", err
		}
		return render.Cumulative(metric), nil

	case OpGetActiveEnergy:
		metric, err := d.svc.QueryActiveEnergy(ctx, window)
		if err != nil {
			return "", err
		}
		return render.Cumulative(metric), nil

	case OpGetHeartRate:
		samples, err := d.svc.QueryHeartRate(ctx, window)
		if err != nil {
			return "", err
		}
		return render.HeartRate(samples), nil

	case OpGetSleep:
		samples, err := d.svc.QuerySleep(ctx, window)
		if err != nil {
			return "", err
		}
		return render.Sleep(samples), nil

	case OpGetHealthSummary:
		summary, err := d.svc.Summary(ctx, window)
		if err != nil {
			return "", err
		}
		return render.Combined(summary), nil

	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownOperation, operation)
	}
}
