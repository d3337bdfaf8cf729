// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kubeconfig

import (
	"context"
	"fmt"

	"k8s.io/client-go/tools/clientcmd"
	clientcmdapi "k8s.io/client-go/tools/clientcmd/api"

	"github.com/canonical/workspace-service/internal/logging"
	"github.com/canonical/workspace-service/internal/monitoring"
	"github.com/canonical/workspace-service/internal/tracing"
)

type ClientInterface interface {
	// Generate materializes a kubeconfig for the given regional identity.
	// Safe to call repeatedly for the same identity.
	Generate(ctx context.Context, userCrUID, userCrName string) (string, error)
}

// TokenMinter signs the bearer token embedded in generated kubeconfigs. The
// regional apiserver validates these tokens against the same key.
type TokenMinter interface {
	SignKubeToken(userCrUID, userCrName string) (string, error)
}

type Client struct {
	apiServerURL string
	minter       TokenMinter

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(apiServerURL string, minter TokenMinter, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	return &Client{
		apiServerURL: apiServerURL,
		minter:       minter,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}

func (c *Client) Generate(ctx context.Context, userCrUID, userCrName string) (string, error) {
	_, span := c.tracer.Start(ctx, "kubeconfig.Generate")
	defer span.End()

	token, err := c.minter.SignKubeToken(userCrUID, userCrName)
	if err != nil {
		return "", fmt.Errorf("failed to mint kubeconfig token: %w", err)
	}

	contextName := fmt.Sprintf("%s@%s", userCrName, clusterName)

	cfg := clientcmdapi.NewConfig()
	cfg.Clusters[clusterName] = &clientcmdapi.Cluster{
		Server:                c.apiServerURL,
		InsecureSkipTLSVerify: true,
	}
	cfg.AuthInfos[userCrName] = &clientcmdapi.AuthInfo{
		Token: token,
	}
	cfg.Contexts[contextName] = &clientcmdapi.Context{
		Cluster:   clusterName,
		AuthInfo:  userCrName,
		Namespace: fmt.Sprintf("ns-%s", userCrName),
	}
	cfg.CurrentContext = contextName

	out, err := clientcmd.Write(*cfg)
	if err != nil {
		return "", fmt.Errorf("failed to serialize kubeconfig: %w", err)
	}

	return string(out), nil
}

const clusterName = "workspace-cluster"
