package aws

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/cloudcontrol"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/eks"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Connection hands out AWS service clients for the active profile and
// region. Clients are created lazily per profile:region pair and cached.
type Connection interface {
	Config() *ClientConfig
	ConnectionOK() bool
	CheckConnectivity() bool
	SwitchProfile(profile string) error
	SwitchRegion(region string) error
	ActiveProfile() string
	ActiveRegion() string
	AccountID() string
	ProfileNames() []string
	ProfileRegion(profile string) string
	EC2(region string) *ec2.Client
	S3() *s3.Client
	S3Regional(region string) *s3.Client
	IAM() *iam.Client
	EKS(region string) *eks.Client
	STS(region string) *sts.Client
	CloudControl(region string) *cloudcontrol.Client
	CloudFormation(region string) *cloudformation.Client
}

// ClientConfig selects the profile and region plus a per-call timeout.
type ClientConfig struct {
	Profile string
	Region  string
	Timeout time.Duration
}

type serviceClients struct {
	ec2 *ec2.Client
	s3  *s3.Client
	iam *iam.Client
	eks *eks.Client
	sts *sts.Client
	cc  *cloudcontrol.Client
	cfn *cloudformation.Client
	cfg aws.Config
}

// APIClient implements Connection over the shared AWS config chain.
type APIClient struct {
	config    *ClientConfig
	settings  ProfileSettings
	clients   map[string]*serviceClients
	accountID string
	connOK    bool
	mx        sync.RWMutex
}

// NewAPIClient creates a disconnected APIClient; clients materialize on
// first use.
func NewAPIClient(settings ProfileSettings, cfg *ClientConfig) (*APIClient, error) {
	if settings == nil {
		return nil, errors.New("settings cannot be nil")
	}
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	return &APIClient{
		config:   cfg,
		settings: settings,
		clients:  make(map[string]*serviceClients),
	}, nil
}

// Config returns a copy of the client configuration.
func (c *APIClient) Config() *ClientConfig {
	c.mx.RLock()
	defer c.mx.RUnlock()
	cfg := *c.config
	return &cfg
}

// ConnectionOK reports the result of the last connectivity check.
func (c *APIClient) ConnectionOK() bool {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.connOK
}

// CheckConnectivity calls STS GetCallerIdentity and caches the account ID
// on success.
func (c *APIClient) CheckConnectivity() bool {
	ctx := context.Background()
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	stsClient := c.STS(c.ActiveRegion())
	if stsClient == nil {
		c.setConnOK(false, "")
		return false
	}

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		c.setConnOK(false, "")
		return false
	}

	c.setConnOK(true, SafeString(result.Account))
	return true
}

func (c *APIClient) setConnOK(ok bool, accountID string) {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.connOK = ok
	c.accountID = accountID
}

// SwitchProfile switches profiles and drops the old profile's cached
// clients.
func (c *APIClient) SwitchProfile(profile string) error {
	if _, err := c.settings.GetProfile(profile); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidProfile, profile)
	}

	c.mx.Lock()
	defer c.mx.Unlock()

	old := c.config.Profile
	for key := range c.clients {
		if strings.HasPrefix(key, old+":") {
			delete(c.clients, key)
		}
	}
	c.config.Profile = profile
	c.connOK = false
	c.accountID = ""
	return nil
}

// SwitchRegion changes the active region. Regional clients are lazily
// created, so nothing is invalidated.
func (c *APIClient) SwitchRegion(region string) error {
	if region == "" {
		return ErrInvalidRegion
	}

	c.mx.Lock()
	defer c.mx.Unlock()
	c.config.Region = region
	return nil
}

// ActiveProfile returns the active profile name.
func (c *APIClient) ActiveProfile() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.config.Profile
}

// ActiveRegion returns the active region.
func (c *APIClient) ActiveRegion() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.config.Region
}

// AccountID returns the account ID cached by the last connectivity check.
func (c *APIClient) AccountID() string {
	c.mx.RLock()
	defer c.mx.RUnlock()
	return c.accountID
}

// ProfileNames returns all discovered profile names.
func (c *APIClient) ProfileNames() []string {
	names, err := c.settings.ProfileNames()
	if err != nil {
		return nil
	}
	result := make([]string, 0, len(names))
	for name := range names {
		result = append(result, name)
	}
	return result
}

// ProfileRegion returns the default region configured for a profile.
func (c *APIClient) ProfileRegion(profile string) string {
	p, err := c.settings.GetProfile(profile)
	if err != nil || p == nil {
		return ""
	}
	return p.DefaultRegion
}

// EC2 returns an EC2 client for the given region.
func (c *APIClient) EC2(region string) *ec2.Client {
	clients, err := c.getClients(region)
	if err != nil {
		return nil
	}
	return clients.ec2
}

// S3 returns an S3 client pinned to the default region.
func (c *APIClient) S3() *s3.Client {
	return c.S3Regional(DefaultRegion)
}

// S3Regional returns an S3 client for bucket operations in a specific
// region.
func (c *APIClient) S3Regional(region string) *s3.Client {
	if region == "" {
		region = DefaultRegion
	}
	clients, err := c.getClients(region)
	if err != nil {
		return nil
	}
	return clients.s3
}

// IAM returns an IAM client. IAM is global; the default region is used.
func (c *APIClient) IAM() *iam.Client {
	clients, err := c.getClients(DefaultRegion)
	if err != nil {
		return nil
	}
	return clients.iam
}

// EKS returns an EKS client for the given region.
func (c *APIClient) EKS(region string) *eks.Client {
	clients, err := c.getClients(region)
	if err != nil {
		return nil
	}
	return clients.eks
}

// STS returns an STS client for the given region.
func (c *APIClient) STS(region string) *sts.Client {
	clients, err := c.getClients(region)
	if err != nil {
		return nil
	}
	return clients.sts
}

// CloudControl returns a Cloud Control client for the given region.
func (c *APIClient) CloudControl(region string) *cloudcontrol.Client {
	clients, err := c.getClients(region)
	if err != nil {
		return nil
	}
	return clients.cc
}

// CloudFormation returns a CloudFormation client for the given region.
func (c *APIClient) CloudFormation(region string) *cloudformation.Client {
	clients, err := c.getClients(region)
	if err != nil {
		return nil
	}
	return clients.cfn
}

// getClients returns the cached client set for profile:region, creating
// it on first use.
func (c *APIClient) getClients(region string) (*serviceClients, error) {
	c.mx.RLock()
	key := c.config.Profile + ":" + region
	if clients, ok := c.clients[key]; ok {
		c.mx.RUnlock()
		return clients, nil
	}
	c.mx.RUnlock()

	c.mx.Lock()
	defer c.mx.Unlock()

	// Profile may have changed while the lock was released.
	key = c.config.Profile + ":" + region
	if clients, ok := c.clients[key]; ok {
		return clients, nil
	}

	clients, err := c.createClients(c.config.Profile, region)
	if err != nil {
		return nil, err
	}
	c.clients[key] = clients
	return clients, nil
}

func (c *APIClient) createClients(profile, region string) (*serviceClients, error) {
	ctx := context.Background()
	if c.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.config.Timeout)
		defer cancel()
	}

	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithSharedConfigProfile(profile),
	)
	if err != nil {
		return nil, WrapAPIError(err, "load AWS config")
	}

	return &serviceClients{
		ec2: ec2.NewFromConfig(cfg),
		s3:  s3.NewFromConfig(cfg),
		iam: iam.NewFromConfig(cfg),
		eks: eks.NewFromConfig(cfg),
		sts: sts.NewFromConfig(cfg),
		cc:  cloudcontrol.NewFromConfig(cfg),
		cfn: cloudformation.NewFromConfig(cfg),
		cfg: cfg,
	}, nil
}
