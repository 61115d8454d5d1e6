package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/chronicleprotocol/ethutil/internal/adapters/progress"
	"github.com/chronicleprotocol/ethutil/internal/app"
	"github.com/chronicleprotocol/ethutil/internal/cli/render"
	"github.com/chronicleprotocol/ethutil/internal/config"
	"github.com/chronicleprotocol/ethutil/internal/domain"
	"github.com/spf13/cobra"
)

// Process exit codes
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// Execute runs cmd with args and maps the outcome to an exit code. Usage
// text goes to stdout, error lines to stderr.
func Execute(cmd *cobra.Command, args []string) int {
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}

	errRenderer := render.NewErrorRenderer(cmd.ErrOrStderr())

	var usageErr *domain.UsageError
	if errors.As(err, &usageErr) {
		if usageErr.Err != nil {
			_ = errRenderer.Render(usageErr.Err)
		}
		_ = render.RenderUsage(cmd.OutOrStdout(), usageErr.Lines)
		return ExitUsage
	}

	_ = errRenderer.Render(err)
	return ExitFailure
}

// newCommand applies the settings shared by both binaries
func newCommand(cmd *cobra.Command, nargs int, usage func(name string) []string) *cobra.Command {
	cmd.Args = func(cmd *cobra.Command, args []string) error {
		if len(args) != nargs {
			return &domain.UsageError{Lines: usage(cmd.Name())}
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &domain.UsageError{Lines: usage(cmd.Name()), Err: err}
	})
	// Flags must precede the arguments so a nonce like -1 is not read as a flag
	cmd.Flags().SetInterspersed(false)
	cmd.PreRunE = setupApp
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.Flags().Bool("debug", false, "Enable debug logging on stderr")
	setVersion(cmd)
	return cmd
}

// setupApp builds the App from flags, environment and config files and
// stores it in the command context. An App already in the context is kept.
func setupApp(cmd *cobra.Command, args []string) error {
	if _, err := getApp(cmd); err == nil {
		return nil
	}

	v := config.SetupViper(config.FindWorkDir(), cmd)

	sink := progress.NewSink(os.Stderr, v.GetBool("quiet"))

	// Initialize app with DI
	appInstance, err := app.InitApp(v, sink)
	if err != nil {
		return fmt.Errorf("failed to initialize app: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, appKey, appInstance)

	// Add timeout if configured
	if appInstance.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
		cmd.PostRun = func(cmd *cobra.Command, args []string) {
			cancel()
		}
	}

	cmd.SetContext(ctx)
	return nil
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	ctx := cmd.Context()
	if ctx == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	appInstance, ok := ctx.Value(appKey).(*app.App)
	if !ok || appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	return appInstance, nil
}
