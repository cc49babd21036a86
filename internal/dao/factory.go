// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of pagr

package dao

import (
	"github.com/pagr/pagr/internal/aws"
)

// ConnFactory implements the Factory interface using an APIClient.
type ConnFactory struct {
	client  aws.Connection
	profile string
	region  string
}

// NewFactory creates a new ConnFactory with the given client.
func NewFactory(client aws.Connection) *ConnFactory {
	profile := ""
	region := ""
	if client != nil {
		profile = client.ActiveProfile()
		region = client.ActiveRegion()
	}
	return &ConnFactory{
		client:  client,
		profile: profile,
		region:  region,
	}
}

// NewOfflineFactory creates a factory with no backing connection, for
// sources that do not need one.
func NewOfflineFactory(profile, region string) *ConnFactory {
	return &ConnFactory{
		profile: profile,
		region:  region,
	}
}

// Client returns the AWS connection.
func (f *ConnFactory) Client() aws.Connection {
	return f.client
}

// Profile returns the current profile.
func (f *ConnFactory) Profile() string {
	if f.client != nil {
		return f.client.ActiveProfile()
	}
	return f.profile
}

// Region returns the current region.
func (f *ConnFactory) Region() string {
	if f.client != nil {
		return f.client.ActiveRegion()
	}
	return f.region
}

// SetProfile switches to a different profile.
func (f *ConnFactory) SetProfile(profile string) error {
	if f.client == nil {
		return aws.ErrNoConnection
	}
	err := f.client.SwitchProfile(profile)
	if err == nil {
		f.profile = profile
	}
	return err
}

// SetRegion switches to a different region.
func (f *ConnFactory) SetRegion(region string) error {
	if f.client == nil {
		return aws.ErrNoConnection
	}
	err := f.client.SwitchRegion(region)
	if err == nil {
		f.region = region
	}
	return err
}
