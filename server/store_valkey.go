package server

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/valkey-io/valkey-go"

	"ai_blog_assistant/generator"
)

const valkeyKeyPrefix = "blog:session:"

// ValkeyOptions mirrors the valkey section of the config.
type ValkeyOptions struct {
	Address  string
	Password string
	DB       int
	TLS      bool
}

// ValkeyStore keeps sessions as JSON strings with a TTL, so any number of
// server replicas can share them.
type ValkeyStore struct {
	client valkey.Client
	ttl    time.Duration
}

func NewValkeyStore(ctx context.Context, opts ValkeyOptions, ttl time.Duration) (*ValkeyStore, error) {
	clientOpts := valkey.ClientOption{
		InitAddress:      []string{opts.Address},
		Password:         opts.Password,
		SelectDB:         opts.DB,
		ConnWriteTimeout: 5 * time.Second,
	}
	if opts.TLS {
		clientOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client, err := valkey.NewClient(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyStore] failed to create client: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Do(pingCtx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyStore] failed to ping %s: %w", opts.Address, err)
	}

	log.Infof("[ValkeyStore] connected to %s (db %d)", opts.Address, opts.DB)
	return &ValkeyStore{client: client, ttl: ttl}, nil
}

func sessionKey(id string) string { return valkeyKeyPrefix + id }

func (v *ValkeyStore) Get(ctx context.Context, id string) (*generator.Session, error) {
	raw, err := v.client.Do(ctx, v.client.B().Get().Key(sessionKey(id)).Build()).ToString()
	if valkey.IsValkeyNil(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("valkey get session: %w", err)
	}

	var sess generator.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", id, err)
	}
	return &sess, nil
}

func (v *ValkeyStore) Save(ctx context.Context, sess *generator.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	seconds := int64(v.ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}
	cmd := v.client.B().Setex().Key(sessionKey(sess.ID)).Seconds(seconds).Value(string(data)).Build()
	if err := v.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("valkey save session: %w", err)
	}
	return nil
}

func (v *ValkeyStore) Delete(ctx context.Context, id string) error {
	if err := v.client.Do(ctx, v.client.B().Del().Key(sessionKey(id)).Build()).Error(); err != nil {
		return fmt.Errorf("valkey delete session: %w", err)
	}
	return nil
}

func (v *ValkeyStore) Close() error {
	v.client.Close()
	return nil
}
