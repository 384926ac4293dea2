/*
 * Connector - builds the API clients of a credential profile.
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
package awsapi

import (
	"context"
	"fmt"

	"route53-zone-migrator/internal/migrator"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/route53domains"
	log "github.com/sirupsen/logrus"
)

// configLoader loads the SDK configuration of a profile.
type configLoader func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error)

// Connector opens accounts from the shared AWS configuration.
type Connector struct {
	region string
	load   configLoader
}

// NewConnector creates a new connector. The region is used for the Route 53
// client; the registrar client always uses DomainsRegion.
func NewConnector(region string) *Connector {
	return &Connector{
		region: region,
		load:   config.LoadDefaultConfig,
	}
}

// Connect builds the account for a profile. Each call returns independent
// clients; no session is shared between profiles.
func (c Connector) Connect(ctx context.Context, profile string) (*migrator.Account, error) {
	cfg, err := c.load(ctx,
		config.WithSharedConfigProfile(profile),
		config.WithRegion(c.region),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot load configuration for profile %s: %w", profile, err)
	}
	log.Debugf("Loaded configuration for profile [%s] in region [%s]", profile, cfg.Region)

	return &migrator.Account{
		Profile: profile,
		DNS:     NewRoute53(route53.NewFromConfig(cfg)),
		Domains: NewDomains(route53domains.NewFromConfig(cfg, func(o *route53domains.Options) {
			o.Region = DomainsRegion
		})),
	}, nil
}
