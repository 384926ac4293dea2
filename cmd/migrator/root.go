/*
 * Root command - flags and wiring of the migration workflow.
 *
 * Copyright 2026 Marco Confalonieri.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"route53-zone-migrator/internal/awsapi"
	"route53-zone-migrator/internal/metrics"
	"route53-zone-migrator/internal/migrator"
	"route53-zone-migrator/internal/profiles"
	"route53-zone-migrator/internal/prompt"
	"route53-zone-migrator/internal/server"
	"route53-zone-migrator/internal/zonefile"

	"github.com/caarlos0/env/v8"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

// runFunc executes a migration with the resolved configuration.
type runFunc func(ctx context.Context, cfg migrator.Configuration, options server.SocketOptions, out io.Writer) error

// flagValues holds the command line values. They override the environment
// only when set.
type flagValues struct {
	sourceProfile      string
	zoneName           string
	destinationProfile string
	transfer           string
	region             string
	batchSize          int
	matchPolicy        string
	dryRun             bool
	snapshotDir        string
	debug              bool
}

// apply copies the flags changed on the command line into cfg.
func (f flagValues) apply(cmd *cobra.Command, cfg *migrator.Configuration) {
	changed := cmd.Flags().Changed
	if changed("source-profile") {
		cfg.SourceProfile = f.sourceProfile
	}
	if changed("zone") {
		cfg.ZoneName = f.zoneName
	}
	if changed("destination-profile") {
		cfg.DestinationProfile = f.destinationProfile
	}
	if changed("transfer") {
		cfg.Transfer = migrator.TransferMode(f.transfer)
	}
	if changed("region") {
		cfg.Region = f.region
	}
	if changed("batch-size") {
		cfg.BatchSize = f.batchSize
	}
	if changed("match-policy") {
		cfg.MatchPolicy = migrator.MatchPolicy(f.matchPolicy)
	}
	if changed("dry-run") {
		cfg.DryRun = f.dryRun
	}
	if changed("snapshot-dir") {
		cfg.SnapshotDir = f.snapshotDir
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
}

// newRootCommand builds the root command. The resolved configuration is
// handed to run.
func newRootCommand(run runFunc) *cobra.Command {
	f := flagValues{}

	cmd := &cobra.Command{
		Use:           "route53-zone-migrator",
		Short:         "Move a Route 53 hosted zone to another AWS account",
		Long:          "Copies a Route 53 hosted zone and its record sets from one AWS account to another and optionally transfers the domain registration.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := migrator.NewConfiguration()
			if err != nil {
				return fmt.Errorf("cannot read configuration: %w", err)
			}
			f.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			options := server.SocketOptions{}
			if err := env.Parse(&options); err != nil {
				return fmt.Errorf("cannot read metrics options: %w", err)
			}

			if cfg.Debug {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
			return run(cmd.Context(), *cfg, options, cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.sourceProfile, "source-profile", "", "source credential profile (SOURCE_PROFILE)")
	flags.StringVar(&f.zoneName, "zone", "", "name of the zone to migrate (ZONE_NAME)")
	flags.StringVar(&f.destinationProfile, "destination-profile", "", "destination credential profile (DESTINATION_PROFILE)")
	flags.StringVar(&f.transfer, "transfer", string(migrator.TransferAsk), "registrar transfer: ask, yes or no (TRANSFER)")
	flags.StringVar(&f.region, "region", "us-east-1", "region of the Route 53 client (AWS_REGION)")
	flags.IntVar(&f.batchSize, "batch-size", 100, "page size of zone and record listings (BATCH_SIZE)")
	flags.StringVar(&f.matchPolicy, "match-policy", string(migrator.MatchExact), "destination zone match policy: exact or substring (ZONE_MATCH_POLICY)")
	flags.BoolVar(&f.dryRun, "dry-run", false, "log write actions without executing them (DRY_RUN)")
	flags.StringVar(&f.snapshotDir, "snapshot-dir", "", "write a zonefile of the source zone here before migrating (SNAPSHOT_DIR)")
	flags.BoolVar(&f.debug, "debug", false, "enable debug logging (DEBUG)")

	return cmd
}

// newPrompter returns the full-screen prompter on a terminal and the line
// prompter otherwise.
func newPrompter() migrator.Prompter {
	if prompt.IsTerminal(os.Stdin) && prompt.IsTerminal(os.Stdout) {
		return prompt.NewTUI(os.Stdin, os.Stdout)
	}
	return prompt.NewLine(os.Stdin, os.Stdout)
}

// startMetricsSocket starts the metrics socket in the background. The
// returned function stops it.
func startMetricsSocket(options server.SocketOptions, status *server.Status) (func(), error) {
	socket := server.NewMetricsSocket(status, metrics.GetOpenMetricsInstance().GetRegistry(), options)
	startedChan := make(chan struct{})
	errChan := make(chan error, 1)
	go func() {
		errChan <- socket.Start(startedChan)
	}()

	select {
	case <-startedChan:
	case err := <-errChan:
		return nil, fmt.Errorf("cannot start metrics socket: %w", err)
	}
	status.SetHealthy(true)

	return func() {
		status.SetHealthy(false)
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := socket.Shutdown(ctx); err != nil {
			log.Warnf("Cannot stop metrics socket: %v", err)
		}
	}, nil
}

// migrate wires the AWS clients, the prompter and the optional snapshot
// writer, then runs the workflow.
func migrate(ctx context.Context, cfg migrator.Configuration, options server.SocketOptions, out io.Writer) error {
	status := &server.Status{}
	if options.Enabled() {
		stop, err := startMetricsSocket(options, status)
		if err != nil {
			return err
		}
		defer stop()
	}

	var snapshotter migrator.Snapshotter
	if cfg.SnapshotDir != "" {
		snapshotter = zonefile.NewSnapshotter(cfg.SnapshotDir)
	}

	workflow := migrator.NewWorkflow(
		cfg,
		profiles.NewLister(profiles.DefaultFiles()),
		newPrompter(),
		awsapi.NewConnector(cfg.Region),
		snapshotter,
		out,
	)
	workflow.OnStateChange(func(s migrator.State) {
		status.SetStage(s.String())
	})

	status.SetReady(true)
	result, err := workflow.Run(ctx)
	status.SetReady(false)
	if err != nil {
		return err
	}
	printSummary(out, result)
	return nil
}

// printSummary writes the outcome of a completed run.
func printSummary(out io.Writer, r *migrator.Result) {
	prefix := ""
	if r.DryRun {
		prefix = "[dry run] "
	}
	fmt.Fprintf(out, "%sZone %s (%s) from %s to %s (%s)\n",
		prefix, r.SourceZone.Name, r.SourceZone.ID, r.SourceProfile, r.DestinationProfile, destinationID(r))
	if r.ZoneCreated {
		fmt.Fprintf(out, "%sDestination zone created\n", prefix)
	}
	fmt.Fprintf(out, "%sRecord sets submitted: %d\n", prefix, len(r.Batch.Entries))
	if r.Change.ID != "" {
		fmt.Fprintf(out, "%sChange %s is %s\n", prefix, r.Change.ID, r.Change.Status)
	}
	if r.SnapshotPath != "" {
		fmt.Fprintf(out, "%sSnapshot: %s\n", prefix, r.SnapshotPath)
	}
	if r.Ticket != nil {
		fmt.Fprintf(out, "Domain transfer submitted, operation %s\n", r.Ticket.OperationID)
	}
}

// destinationID returns the ID of the destination zone or a placeholder in
// dry run mode, where the zone may not exist.
func destinationID(r *migrator.Result) string {
	if r.DestinationZone.ID == "" {
		return "not created"
	}
	return r.DestinationZone.ID
}
