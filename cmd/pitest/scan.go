package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Pfoerd/pitest"
	"github.com/Pfoerd/pitest/export"
	"github.com/Pfoerd/pitest/listing"
	"github.com/Pfoerd/pitest/report"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var scanCmd = &cobra.Command{
	Use:   "scan [listing files]",
	Short: "Scan javap listings for generated try-with-resources code",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringP("output", "o", "", "Output format (json, text)")
	scanCmd.Flags().String("history-dsn", "", "PostgreSQL DSN for the scan history store")
	scanCmd.Flags().String("out", "", "Write the JSON report to a file")
	scanCmd.Flags().String("s3-uri", "", "Upload the JSON report to s3://bucket/key")
	scanCmd.RegisterFlagCompletionFunc("output",
		func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return outputFormatsCompletion, cobra.ShellCompDirectiveNoFileComp
		})
	viper.BindPFlag("history-dsn", scanCmd.Flags().Lookup("history-dsn"))
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var opts []pitest.Option
	store, err := getHistoryStore(ctx)
	if err != nil {
		return err
	}
	if store != nil {
		defer store.Close(ctx)
		opts = append(opts, pitest.WithHistory(store))
	}

	reports := make([]*report.Report, len(args))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		scanErrs *multierror.Error
	)
	for i, path := range args {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			rep, err := scanFile(ctx, path, opts)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				scanErrs = multierror.Append(scanErrs, err)
				return
			}
			reports[i] = rep
		}(i, path)
	}
	wg.Wait()
	if err := scanErrs.ErrorOrNil(); err != nil {
		return err
	}

	rep, err := report.Merge(strings.Join(args, ", "), reports...)
	if err != nil {
		return err
	}

	format, _ := cmd.Flags().GetString("output")
	switch strings.ToLower(format) {
	case "", "text":
		printReportText(cmd.OutOrStdout(), rep)
	case "json":
		output, err := getOutputJSON(rep)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(output))
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	if out, _ := cmd.Flags().GetString("out"); out != "" {
		if err := export.WriteFile(out, rep); err != nil {
			return err
		}
		log.Info().Str("path", out).Msg("report written")
	}
	if uri, _ := cmd.Flags().GetString("s3-uri"); uri != "" {
		uploader, err := export.NewS3(ctx)
		if err != nil {
			return err
		}
		if err := uploader.Upload(ctx, uri, rep); err != nil {
			return err
		}
		log.Info().Str("uri", uri).Msg("report uploaded")
	}
	return nil
}

// Scans a single listing file. Parse problems are logged as warnings
// rather than failing the scan, so one malformed method does not hide
// findings in the rest of the file.
func scanFile(ctx context.Context, path string, opts []pitest.Option) (*report.Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	classes, err := listing.Parse(ctx, bytes.NewReader(data), listing.WithFilename(path))
	if err != nil {
		var merr *multierror.Error
		if !errors.As(err, &merr) {
			return nil, err
		}
		for _, problem := range merr.Errors {
			log.Warn().Err(problem).Str("file", path).Msg("listing parse problem")
		}
	}
	fileOpts := append([]pitest.Option{pitest.WithFilename(path)}, opts...)
	return pitest.ScanClasses(ctx, classes, fileOpts...)
}

func printReportText(w io.Writer, rep *report.Report) {
	if !rep.HasFindings() {
		fmt.Fprintf(w, "%s (%d classes, %d methods scanned)\n",
			green("no generated try-with-resources code found"),
			rep.ScannedClasses, rep.ScannedMethods)
		return
	}
	for _, class := range rep.Classes {
		name := class.Name
		if class.SourceFile != "" {
			name = fmt.Sprintf("%s (%s)", name, class.SourceFile)
		}
		fmt.Fprintln(w, cyan(name))
		for _, method := range class.Methods {
			fmt.Fprintf(w, "  %s%s: %s\n",
				method.Name, method.Descriptor, yellow(joinInts(method.Lines)))
		}
	}
	fmt.Fprintf(w, "%d flagged lines in %d methods (%d classes, %d methods scanned)\n",
		rep.FlaggedLines(), rep.FlaggedMethods(), rep.ScannedClasses, rep.ScannedMethods)
}
