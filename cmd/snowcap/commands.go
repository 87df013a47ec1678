package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/genricoloni/snowcap/internal/capture"
	"github.com/genricoloni/snowcap/internal/domain"
	"github.com/genricoloni/snowcap/internal/engine"
	"github.com/genricoloni/snowcap/internal/geometry"
	"github.com/genricoloni/snowcap/internal/imagefile"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var captureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture the screen to an image file",
	Long: `Capture the monitors in scope and composite them into one image.

Without --region every monitor is captured when they share one scale factor,
otherwise only the monitor under the pointer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		regionFlag, _ := cmd.Flags().GetString("region")
		output, _ := cmd.Flags().GetString("output")
		format, _ := cmd.Flags().GetString("format")
		excludeFlag, _ := cmd.Flags().GetString("exclude-window")
		toStdout, _ := cmd.Flags().GetBool("stdout")

		req, err := buildRequest(regionFlag, excludeFlag)
		if err != nil {
			return err
		}

		return withApp(func(ctx context.Context, eng *engine.Engine, cfg domain.Config) error {
			if toStdout {
				return captureToWriter(ctx, eng, req, cmd.OutOrStdout(), format, cfg.GetFormat())
			}

			path, err := eng.CaptureToFile(ctx, req, output)
			if err != nil {
				return explain(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		})
	},
}

var monitorsCmd = &cobra.Command{
	Use:   "monitors",
	Short: "List monitors and their physical rectangles",
	RunE: func(cmd *cobra.Command, args []string) error {
		regionFlag, _ := cmd.Flags().GetString("region")
		outputFormat, _ := cmd.Flags().GetString("output-format")

		region, err := parseRegion(regionFlag)
		if err != nil {
			return err
		}

		return withApp(func(ctx context.Context, eng *engine.Engine, cfg domain.Config) error {
			infos, err := eng.Monitors(region)
			if err != nil {
				return err
			}
			consistent, _ := eng.ScaleFactorsConsistent()

			return printStructured(cmd.OutOrStdout(), outputFormat, monitorReport{
				Monitors:               infos,
				ScaleFactorsConsistent: consistent,
			})
		})
	},
}

var pointerCmd = &cobra.Command{
	Use:   "pointer",
	Short: "Print the pointer position and the monitor under it",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat, _ := cmd.Flags().GetString("output-format")

		return withApp(func(ctx context.Context, eng *engine.Engine, cfg domain.Config) error {
			mon, p, err := eng.TargetMonitor()
			if err != nil {
				return err
			}
			return printStructured(cmd.OutOrStdout(), outputFormat, pointerReport{
				Position: p,
				Monitor:  mon.Name(),
				Rect:     mon.Rect(),
			})
		})
	},
}

var permissionCmd = &cobra.Command{
	Use:   "permission",
	Short: "Show or request screen capture permission",
	RunE: func(cmd *cobra.Command, args []string) error {
		request, _ := cmd.Flags().GetBool("request")

		return withApp(func(ctx context.Context, eng *engine.Engine, cfg domain.Config) error {
			granted := eng.PermissionGranted()
			fmt.Fprintf(cmd.OutOrStdout(), "granted: %t\n", granted)

			if request && !granted {
				if !eng.RequestPermission() {
					return errors.New("permission request could not be sent")
				}
				fmt.Fprintln(cmd.OutOrStdout(), "requested: restart snowcap after granting access")
			}
			return nil
		})
	},
}

func init() {
	captureCmd.Flags().StringP("region", "r", "", "Region to capture as minX,minY,maxX,maxY")
	captureCmd.Flags().StringP("output", "o", "", "Output file (default: timestamped file in the output directory)")
	captureCmd.Flags().StringP("format", "f", "", "Image format for --stdout (default: configured format)")
	captureCmd.Flags().String("exclude-window", "", "Native id of a window to leave out (decimal or 0x hex)")
	captureCmd.Flags().Bool("stdout", false, "Write the encoded image to stdout")

	monitorsCmd.Flags().StringP("region", "r", "", "Only list monitors overlapping minX,minY,maxX,maxY")
	monitorsCmd.Flags().String("output-format", "yaml", "Output format: yaml or json")

	pointerCmd.Flags().String("output-format", "yaml", "Output format: yaml or json")

	permissionCmd.Flags().Bool("request", false, "Ask the desktop for permission when it is missing")
}

type monitorReport struct {
	Monitors               []engine.MonitorInfo `json:"monitors" yaml:"monitors"`
	ScaleFactorsConsistent bool                 `json:"scaleFactorsConsistent" yaml:"scaleFactorsConsistent"`
}

type pointerReport struct {
	Position geometry.Point `json:"position" yaml:"position"`
	Monitor  string         `json:"monitor" yaml:"monitor"`
	Rect     geometry.Rect  `json:"rect" yaml:"rect"`
}

// buildRequest parses the capture flags
func buildRequest(regionFlag, excludeFlag string) (engine.Request, error) {
	region, err := parseRegion(regionFlag)
	if err != nil {
		return engine.Request{}, err
	}

	req := engine.Request{Region: region}
	if excludeFlag != "" {
		id, err := strconv.ParseUint(excludeFlag, 0, 32)
		if err != nil {
			return engine.Request{}, fmt.Errorf("invalid window id %q: %w", excludeFlag, err)
		}
		req.Exclude = domain.WindowID(id)
	}
	return req, nil
}

func parseRegion(s string) (*geometry.Rect, error) {
	if s == "" {
		return nil, nil
	}
	r, err := geometry.Parse(s)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// captureToWriter encodes a capture straight to w
func captureToWriter(ctx context.Context, eng *engine.Engine, req engine.Request, w io.Writer, format, fallback string) error {
	if format == "" {
		format = fallback
	}
	f, err := imagefile.ParseFormat(format)
	if err != nil {
		return err
	}

	img, err := eng.Capture(ctx, req)
	if err != nil {
		return explain(err)
	}

	bw := bufio.NewWriter(w)
	if err := imagefile.Encode(bw, img, f); err != nil {
		return err
	}
	return bw.Flush()
}

// printStructured writes v as YAML or JSON
func printStructured(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q: want yaml or json", format)
	}
}

// explain adds a hint to errors the user can act on
func explain(err error) error {
	if errors.Is(err, capture.ErrPermissionDenied) {
		return fmt.Errorf("%w (run `snowcap permission --request`)", err)
	}
	return err
}
