package secretmanager

import (
	"context"
	"fmt"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/ferremax/portal/common"
)

type SecretName string

// List of configured secrets in Secret Manager
const (
	SecretSendgrid SecretName = "sendgrid"
	SecretFirebase SecretName = "firebase"
)

const (
	latestVersion = "latest"
)

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}
)

// AccessSecretLatestVersion utility function to fetch the latest version of a secret payload
func AccessSecretLatestVersion(ctx context.Context, secret SecretName) ([]byte, error) {
	return AccessSecretVersion(ctx, string(secret), latestVersion)
}

// AccessSecretVersion fetches the payload of a secret's version. Payloads are
// cached for the lifetime of the process.
func AccessSecretVersion(ctx context.Context, secret, version string) ([]byte, error) {
	name := secretResourceName(common.ProjectID, secret, version)

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	defer sm.Close()

	accessSecretVersionRes, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	data := accessSecretVersionRes.Payload.GetData()

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}

// GetSecretLatestVersion utility function to get the secret latest version
func GetSecretLatestVersion(ctx context.Context, secret SecretName) (*secretmanagerpb.SecretVersion, error) {
	name := secretResourceName(common.ProjectID, string(secret), latestVersion)

	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	defer sm.Close()

	getSecretVersionRes, err := sm.GetSecretVersion(ctx, &secretmanagerpb.GetSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return getSecretVersionRes, nil
}

func secretResourceName(projectID, secret, version string) string {
	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}
