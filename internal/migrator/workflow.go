/*
 * Workflow - state machine driving a single zone migration.
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
package migrator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"route53-zone-migrator/internal/metrics"
	"route53-zone-migrator/internal/model"

	log "github.com/sirupsen/logrus"
)

// State is a step of the migration workflow.
type State int

const (
	StateSelectSource State = iota
	StateSelectZone
	StateSelectDestination
	StateMigrate
	StateConfirmTransfer
	StateTransfer
	StateDone
)

var stateNames = map[State]string{
	StateSelectSource:      "SelectSource",
	StateSelectZone:        "SelectZone",
	StateSelectDestination: "SelectDestination",
	StateMigrate:           "Migrate",
	StateConfirmTransfer:   "ConfirmTransfer",
	StateTransfer:          "Transfer",
	StateDone:              "Done",
}

// String returns the name of the state.
func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var (
	errNoProfiles = errors.New("no credential profiles available")
	errNoZones    = errors.New("no hosted zones in the source account")
)

// Result summarizes a completed run.
type Result struct {
	SourceProfile      string
	DestinationProfile string
	SourceZone         model.HostedZone
	DestinationZone    model.HostedZone
	ZoneCreated        bool
	Batch              model.ChangeBatch
	Change             model.ChangeInfo
	SnapshotPath       string
	NameServers        []model.NameServer
	Decision           *Decision
	Ticket             *model.TransferTicket
	DryRun             bool
}

// Workflow runs the migration as an ordered state machine. Each state reads
// its input (a preselected value or an operator answer) and returns the next
// state.
type Workflow struct {
	config       Configuration
	profiles     ProfileLister
	prompter     Prompter
	connector    Connector
	snapshotter  Snapshotter
	reader       *ZoneReader
	reconciler   *ZoneReconciler
	orchestrator *DomainTransferOrchestrator
	out          io.Writer
	onState      func(State)
}

// NewWorkflow creates a new workflow. The snapshotter may be nil. Manual
// transfer instructions are written to out.
func NewWorkflow(config Configuration, profiles ProfileLister, prompter Prompter, connector Connector, snapshotter Snapshotter, out io.Writer) *Workflow {
	reader := NewZoneReader(config)
	return &Workflow{
		config:       config,
		profiles:     profiles,
		prompter:     prompter,
		connector:    connector,
		snapshotter:  snapshotter,
		reader:       reader,
		reconciler:   NewZoneReconciler(reader, config.DryRun),
		orchestrator: NewDomainTransferOrchestrator(),
		out:          out,
	}
}

// OnStateChange registers a function called with every state the workflow
// enters, StateDone included. A failed run stays on the failing state.
func (w *Workflow) OnStateChange(f func(State)) {
	w.onState = f
}

// enter reports the state to the registered observer.
func (w *Workflow) enter(state State) {
	log.Debugf("Entering state %s", state)
	if w.onState != nil {
		w.onState(state)
	}
}

// run holds the values collected while the workflow advances.
type run struct {
	source      *Account
	destination *Account
	sourceZones []model.HostedZone
	confirmed   bool
	result      Result
}

// stateHandler executes one state and returns the next one.
type stateHandler func(ctx context.Context, r *run) (State, error)

// Run executes the workflow from StateSelectSource to StateDone. It stops
// at the first error.
func (w *Workflow) Run(ctx context.Context) (*Result, error) {
	handlers := map[State]stateHandler{
		StateSelectSource:      w.selectSource,
		StateSelectZone:        w.selectZone,
		StateSelectDestination: w.selectDestination,
		StateMigrate:           w.migrate,
		StateConfirmTransfer:   w.confirmTransfer,
		StateTransfer:          w.transfer,
	}

	r := &run{result: Result{DryRun: w.config.DryRun}}
	state := StateSelectSource
	for state != StateDone {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		handler, ok := handlers[state]
		if !ok {
			return nil, fmt.Errorf("no handler for state %s", state)
		}
		w.enter(state)
		next, err := handler(ctx, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", state, err)
		}
		state = next
	}
	w.enter(StateDone)
	return &r.result, nil
}

// chooseProfile returns the preselected profile or asks the operator.
func (w *Workflow) chooseProfile(preselected, message string) (string, error) {
	if preselected != "" {
		return preselected, nil
	}
	profiles, err := w.profiles.ListProfiles()
	if err != nil {
		return "", err
	}
	if len(profiles) == 0 {
		return "", errNoProfiles
	}
	return w.prompter.Choose(message, profiles)
}

// selectSource opens the source account.
func (w *Workflow) selectSource(ctx context.Context, r *run) (State, error) {
	profile, err := w.chooseProfile(w.config.SourceProfile, "Choose the source account")
	if err != nil {
		return StateDone, err
	}
	account, err := w.connector.Connect(ctx, profile)
	if err != nil {
		return StateDone, err
	}
	zones, err := w.reader.ListZones(ctx, account)
	if err != nil {
		return StateDone, err
	}
	if len(zones) == 0 {
		return StateDone, errNoZones
	}
	r.source = account
	r.sourceZones = zones
	r.result.SourceProfile = profile
	return StateSelectZone, nil
}

// selectZone picks the zone to migrate.
func (w *Workflow) selectZone(_ context.Context, r *run) (State, error) {
	labels, byLabel := zoneChoices(r.sourceZones)

	if w.config.ZoneName != "" {
		target := canonicalZoneName(w.config.ZoneName)
		for _, z := range r.sourceZones {
			if canonicalZoneName(z.Name) == target {
				r.result.SourceZone = z
				return StateSelectDestination, nil
			}
		}
		return StateDone, fmt.Errorf("zone %s not found in account %s", w.config.ZoneName, r.source.Profile)
	}

	label, err := w.prompter.Choose("Move which zone", labels)
	if err != nil {
		return StateDone, err
	}
	zone, ok := byLabel[label]
	if !ok {
		return StateDone, fmt.Errorf("unknown zone %q", label)
	}
	r.result.SourceZone = zone
	return StateSelectDestination, nil
}

// selectDestination opens the destination account.
func (w *Workflow) selectDestination(ctx context.Context, r *run) (State, error) {
	profile, err := w.chooseProfile(w.config.DestinationProfile, "Choose the destination account")
	if err != nil {
		return StateDone, err
	}
	if profile == r.source.Profile {
		log.Warnf("Source and destination profiles are both [%s]", profile)
	}
	account, err := w.connector.Connect(ctx, profile)
	if err != nil {
		return StateDone, err
	}
	r.destination = account
	r.result.DestinationProfile = profile
	return StateMigrate, nil
}

// migrate copies the zone and its records to the destination account.
func (w *Workflow) migrate(ctx context.Context, r *run) (State, error) {
	zone := r.result.SourceZone
	log.Infof("Start migration of [%s] from [%s] to [%s]", zone.Name, r.source.Profile, r.destination.Profile)

	recordSets, err := w.reader.ListRecordSets(ctx, r.source, zone.ID)
	if err != nil {
		return StateDone, err
	}

	if w.snapshotter != nil {
		path, err := w.snapshotter.Snapshot(zone, recordSets)
		if err != nil {
			return StateDone, fmt.Errorf("cannot write snapshot of zone %s: %w", zone.Name, err)
		}
		log.Infof("Snapshot of [%s] written to [%s]", zone.Name, path)
		r.result.SnapshotPath = path
	}

	batch := BuildChangeBatch(recordSets)
	m := metrics.GetOpenMetricsInstance()
	m.SetMigratedRecords(zone.Name, len(batch.Entries))
	m.SetSkippedRecords(zone.Name, countSkipped(recordSets))
	if aliases := countAliases(batch); aliases > 0 {
		log.Warnf("%d alias record sets are migrated without a TTL and keep pointing to their original targets", aliases)
	}
	if scoped := countAccountScoped(batch); scoped > 0 {
		log.Warnf("%d record sets refer to health checks or CIDR collections, which must exist in [%s] with the same IDs", scoped, r.destination.Profile)
	}
	r.result.Batch = batch

	destZone, created, err := w.reconciler.EnsureDestinationZone(ctx, r.destination, zone.Name, r.source.Profile)
	if err != nil {
		return StateDone, err
	}
	r.result.DestinationZone = destZone
	r.result.ZoneCreated = created

	log.Infof("Migrating zone records for [%s]", zone.Name)
	info, err := w.reconciler.ApplyChangeBatch(ctx, r.destination, destZone.ID, batch)
	if err != nil {
		return StateDone, err
	}
	r.result.Change = info

	if w.config.DryRun {
		log.Info("Dry run: registrar transfer skipped")
		return StateDone, nil
	}
	log.Infof("Hosted zone and records transferred to [%s]", r.destination.Profile)
	return StateConfirmTransfer, nil
}

// confirmTransfer asks whether to transfer the registration and reads the
// destination name servers needed either way.
func (w *Workflow) confirmTransfer(ctx context.Context, r *run) (State, error) {
	domain := r.result.SourceZone.Name
	switch w.config.Transfer {
	case TransferYes:
		r.confirmed = true
	case TransferNo:
		r.confirmed = false
	default:
		message := fmt.Sprintf("Transfer %s to %s?", domain, r.destination.Profile)
		confirmed, err := w.prompter.Confirm(message)
		if err != nil {
			return StateDone, err
		}
		r.confirmed = confirmed
	}

	nameServers, err := w.reader.NameServers(ctx, r.destination, r.result.DestinationZone)
	if err != nil {
		return StateDone, fmt.Errorf("cannot fetch destination domain details: %w", err)
	}
	r.result.NameServers = nameServers

	decision := Decide(r.confirmed, nameServers)
	r.result.Decision = &decision
	if decision.Outcome == Abort {
		w.printManualInstructions(decision)
		return StateDone, nil
	}
	return StateTransfer, nil
}

// transfer submits the registrar transfer.
func (w *Workflow) transfer(ctx context.Context, r *run) (State, error) {
	ticket, err := w.orchestrator.Transfer(ctx, r.source, r.destination, r.result.SourceZone.Name, r.result.NameServers)
	if err != nil {
		return StateDone, err
	}
	r.result.Ticket = &ticket
	return StateDone, nil
}

// printManualInstructions tells the operator which name servers to set at
// the registrar.
func (w *Workflow) printManualInstructions(decision Decision) {
	fmt.Fprintln(w.out, "You'll want to either manually transfer the domain, or change the nameservers at the registrar to:")
	for _, ns := range decision.ManualInstructions {
		fmt.Fprintf(w.out, "\t%s\n", ns)
	}
}

// zoneChoices returns the menu labels for the zones and the zone behind
// each label. Zones sharing a name (a public and a private one, for
// instance) are labelled with their ID as well.
func zoneChoices(zones []model.HostedZone) ([]string, map[string]model.HostedZone) {
	counts := map[string]int{}
	for _, z := range zones {
		counts[z.Name]++
	}
	labels := make([]string, 0, len(zones))
	byLabel := make(map[string]model.HostedZone, len(zones))
	for _, z := range zones {
		label := z.Name
		if counts[z.Name] > 1 {
			label = fmt.Sprintf("%s (%s)", z.Name, z.ID)
		}
		labels = append(labels, label)
		byLabel[label] = z
	}
	slices.Sort(labels)
	return labels, byLabel
}
