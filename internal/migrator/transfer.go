/*
 * Transfer - registrar transfer of the migrated domain.
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

	"route53-zone-migrator/internal/model"

	log "github.com/sirupsen/logrus"
)

// transferDurationInYears is the registration period requested with the
// transfer.
const transferDurationInYears = 1

// errEmptyAuthCode is returned when the registrar answers without a code.
var errEmptyAuthCode = errors.New("registrar returned an empty auth code")

// DomainTransferOrchestrator moves the domain registration from the source
// account to the destination account. It never touches the migrated zone,
// which stays in place whatever the transfer outcome.
type DomainTransferOrchestrator struct{}

// NewDomainTransferOrchestrator creates a new DomainTransferOrchestrator.
func NewDomainTransferOrchestrator() *DomainTransferOrchestrator {
	return &DomainTransferOrchestrator{}
}

// RetrieveAuthCode returns the transfer auth code of the domain. A missing
// code is an error: no transfer is attempted without one.
func (o DomainTransferOrchestrator) RetrieveAuthCode(ctx context.Context, source *Account, domainName string) (string, error) {
	code, err := source.Domains.RetrieveDomainAuthCode(ctx, domainName)
	if err != nil {
		return "", fmt.Errorf("cannot fetch auth code for %s: %w", domainName, err)
	}
	if code == "" {
		return "", fmt.Errorf("cannot fetch auth code for %s: %w", domainName, errEmptyAuthCode)
	}
	return code, nil
}

// FetchContacts returns the admin, registrant and tech contacts of the
// domain.
func (o DomainTransferOrchestrator) FetchContacts(ctx context.Context, source *Account, domainName string) (model.ContactSet, error) {
	contacts, err := source.Domains.GetDomainContacts(ctx, domainName)
	if err != nil {
		return model.ContactSet{}, fmt.Errorf("cannot fetch domain details for %s: %w", domainName, err)
	}
	return contacts, nil
}

// SubmitTransfer sends the transfer request to the destination account.
func (o DomainTransferOrchestrator) SubmitTransfer(ctx context.Context, dest *Account, request model.DomainTransferRequest) (model.TransferTicket, error) {
	ticket, err := dest.Domains.TransferDomain(ctx, request)
	if err != nil {
		return model.TransferTicket{}, fmt.Errorf("cannot transfer domain %s: %w", request.DomainName, err)
	}
	return ticket, nil
}

// Transfer runs the full registrar transfer: auth code, contacts and
// transfer request.
func (o DomainTransferOrchestrator) Transfer(ctx context.Context, source, dest *Account, domainName string, nameServers []model.NameServer) (model.TransferTicket, error) {
	authCode, err := o.RetrieveAuthCode(ctx, source, domainName)
	if err != nil {
		return model.TransferTicket{}, err
	}

	contacts, err := o.FetchContacts(ctx, source, domainName)
	if err != nil {
		return model.TransferTicket{}, err
	}
	log.Info("Moving contacts over")

	log.Infof("Sending transfer request for [%s] to [%s]", domainName, dest.Profile)
	ticket, err := o.SubmitTransfer(ctx, dest, NewTransferRequest(domainName, authCode, nameServers, contacts))
	if err != nil {
		return model.TransferTicket{}, err
	}
	log.Infof("Transfer of [%s] submitted with operation ID [%s]", domainName, ticket.OperationID)
	return ticket, nil
}

// NewTransferRequest builds a transfer request with the defaults used by the
// migration: one year, auto renewal and privacy protection on every contact.
func NewTransferRequest(domainName, authCode string, nameServers []model.NameServer, contacts model.ContactSet) model.DomainTransferRequest {
	return model.DomainTransferRequest{
		DomainName:      domainName,
		DurationInYears: transferDurationInYears,
		NameServers:     nameServers,
		AuthCode:        authCode,
		AutoRenew:       true,
		Contacts:        contacts,
		PrivacyProtect: model.PrivacyProtection{
			Admin:      true,
			Registrant: true,
			Tech:       true,
		},
	}
}
