package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
)

// OutputFormatter handles three output modes: JSON, quiet, and human-readable
type OutputFormatter struct {
	JSON  bool
	Quiet bool

	Out    io.Writer // defaults to os.Stdout
	ErrOut io.Writer // defaults to os.Stderr
}

// Identifier is implemented by results that have a single ID for quiet mode
type Identifier interface {
	GetID() int
}

// IDLister is implemented by list results; quiet mode prints one ID per line
type IDLister interface {
	IDs() []int
}

// HumanRenderer is implemented by results with a custom human-readable form
type HumanRenderer interface {
	RenderHuman() string
}

// NewFormatter builds a formatter from the --json and --quiet flags of cmd
func NewFormatter(cmd *cobra.Command) *OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &OutputFormatter{
		JSON:   jsonOutput,
		Quiet:  quietMode,
		Out:    cmd.OutOrStdout(),
		ErrOut: cmd.ErrOrStderr(),
	}
}

// Success outputs successful operation result
func (f *OutputFormatter) Success(data any) error {
	if data == nil {
		return nil
	}

	if f.Quiet {
		switch v := data.(type) {
		case Identifier:
			if v.GetID() <= 0 {
				return nil
			}
			_, err := fmt.Fprintf(f.out(), "%d\n", v.GetID())
			return err
		case IDLister:
			for _, id := range v.IDs() {
				if _, err := fmt.Fprintf(f.out(), "%d\n", id); err != nil {
					return err
				}
			}
			return nil
		}
	}

	if f.JSON {
		return sonic.ConfigDefault.NewEncoder(f.out()).Encode(map[string]any{
			"success": true,
			"data":    data,
		})
	}

	if f.Quiet {
		return nil
	}

	// Human-readable format
	if r, ok := data.(HumanRenderer); ok {
		_, err := fmt.Fprintln(f.out(), r.RenderHuman())
		return err
	}
	_, err := fmt.Fprintf(f.out(), "%+v\n", data)
	return err
}

// Error outputs error information
func (f *OutputFormatter) Error(code string, message string) error {
	return f.ErrorWithSuggestion(code, message, "")
}

// ErrorWithSuggestion outputs error information with an optional suggestion
func (f *OutputFormatter) ErrorWithSuggestion(code string, message string, suggestion string) error {
	if f.JSON {
		errData := map[string]any{
			"code":    code,
			"message": message,
		}
		if suggestion != "" {
			errData["suggestion"] = suggestion
		}
		return sonic.ConfigDefault.NewEncoder(f.out()).Encode(map[string]any{
			"success": false,
			"error":   errData,
		})
	}

	// Human-readable error
	if _, err := fmt.Fprintf(f.errOut(), "❌ Error: %s\n", message); err != nil {
		return err
	}
	if suggestion != "" {
		if _, err := fmt.Fprintf(f.errOut(), "💡 Suggestion: %s\n", suggestion); err != nil {
			return err
		}
	}
	return nil
}

func (f *OutputFormatter) out() io.Writer {
	if f.Out == nil {
		return os.Stdout
	}
	return f.Out
}

func (f *OutputFormatter) errOut() io.Writer {
	if f.ErrOut == nil {
		return os.Stderr
	}
	return f.ErrOut
}
