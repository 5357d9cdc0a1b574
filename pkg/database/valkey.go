package database

import (
	"context"
	"fmt"
	"time"

	"localserve/pkg/utils"

	"github.com/valkey-io/valkey-go"
)

// InitValkey connects to a Valkey-compatible server and verifies the connection
func InitValkey(config utils.ValkeyConfig) (valkey.Client, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{config.Addr},
		Password:    config.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("create valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping valkey failed: %w", err)
	}

	return client, nil
}
