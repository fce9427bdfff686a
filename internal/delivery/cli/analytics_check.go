package cli

import (
	"context"
	"log/slog"
	"time"

	"appname/config"
	"appname/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	commandName     = "runcommand"
	defaultEnvLabel = "development"
)

// AnalyticsCheck sends three independent test events to the analytics backend
// and reports each outcome on the console.
type AnalyticsCheck struct {
	client  service.AnalyticsClient
	console *Console
	env     string
	logger  *slog.Logger
	now     func() time.Time
}

// AnalyticsCheckParams holds dependencies for AnalyticsCheck, injected by Fx
type AnalyticsCheckParams struct {
	fx.In

	Client  service.AnalyticsClient
	Console *Console
	Config  *config.Config
	Logger  *slog.Logger
}

// NewAnalyticsCheck creates the diagnostic command.
func NewAnalyticsCheck(params AnalyticsCheckParams) *AnalyticsCheck {
	env := defaultEnvLabel
	if params.Config != nil && params.Config.Env.Env != "" {
		env = params.Config.Env.Env
	}

	return &AnalyticsCheck{
		client:  params.Client,
		console: params.Console,
		env:     env,
		logger:  params.Logger,
		now:     time.Now,
	}
}

// Run executes the basic, contextual and error-classified captures in order.
// A failing step never prevents the next one, and the completion line is
// always printed once.
func (a *AnalyticsCheck) Run(ctx context.Context) {
	a.report("Basic", a.sendBasic(ctx))
	a.report("Context", a.sendContext(ctx))
	a.report("Error", a.sendError(ctx))

	a.console.Success("🎯 All analytics tests completed!")
}

func (a *AnalyticsCheck) report(kind string, err error) {
	if err != nil {
		a.logger.Debug("Analytics check step failed", slog.String("step", kind), slog.Any("error", err))
		a.console.Error("❌ %s event failed: %v", kind, err)

		return
	}
	a.console.Success("✅ %s event sent successfully", kind)
}

func (a *AnalyticsCheck) sendBasic(ctx context.Context) (err error) {
	defer recoverStep(&err)

	return a.client.Capture(ctx, "test-id-123", "command_test_event", map[string]string{
		"command_name": commandName,
		"status":       "started",
		"environment":  a.env,
	})
}

func (a *AnalyticsCheck) sendContext(ctx context.Context) (err error) {
	defer recoverStep(&err)

	scoped, release := a.client.OpenScope(ctx)
	if release != nil {
		defer release()
	}
	if scoped == nil {
		scoped = ctx
	}

	if err := a.client.Identify(scoped, "test-user-456", map[string]string{
		"email": "test@example.com",
		"name":  "Test User",
	}); err != nil {
		return err
	}

	return a.client.Capture(scoped, "test-user-456", "context_test_event", map[string]string{
		"command_name": commandName,
		"status":       "processed",
		"timestamp":    a.now().UTC().Format(time.RFC3339),
	})
}

func (a *AnalyticsCheck) sendError(ctx context.Context) (err error) {
	defer recoverStep(&err)

	return a.client.Capture(ctx, "test-system", "system_error", map[string]string{
		"error_type":    "test_error",
		"error_message": "This is a test error",
		"severity":      "low",
		"component":     "management_command",
	})
}

// recoverStep turns a panic inside a step into that step's error.
func recoverStep(err *error) {
	if r := recover(); r != nil {
		*err = errors.Errorf("panic: %v", r)
	}
}
