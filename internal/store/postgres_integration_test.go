// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

//go:build integration

package store_test

import (
	"context"
	"errors"
	"time"

	"github.com/oklog/ulid/v2"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/holomush/holologin/internal/auth"
	"github.com/holomush/holologin/internal/config"
	"github.com/holomush/holologin/internal/store"
)

// setupPostgresContainer starts PostgreSQL and opens a store with its schema in place.
func setupPostgresContainer() (store.Store, func(), error) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("holologin_test"),
		postgres.WithUsername("holologin"),
		postgres.WithPassword("holologin"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	s, err := store.Open(ctx, config.StoreConfig{
		Driver:         store.DriverPostgres,
		DSN:            connStr,
		ConnectRetries: 3,
	})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	if err := s.EnsureSchema(ctx); err != nil {
		_ = s.Close()
		_ = container.Terminate(ctx)
		return nil, nil, err
	}

	cleanup := func() {
		_ = s.Close()
		_ = container.Terminate(ctx)
	}

	return s, cleanup, nil
}

var _ = Describe("PostgresStore", func() {
	var (
		credentials store.Store
		cleanup     func()
	)

	BeforeEach(func() {
		var err error
		credentials, cleanup, err = setupPostgresContainer()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		cleanup()
	})

	Describe("EnsureSchema", func() {
		It("is idempotent and keeps existing rows", func() {
			ctx := context.Background()
			Expect(credentials.InsertIfAbsent(ctx, "alice", "secret")).To(Succeed())

			Expect(credentials.EnsureSchema(ctx)).To(Succeed())

			password, found, err := credentials.Lookup(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(password).To(Equal("secret"))
		})
	})

	Describe("InsertIfAbsent", func() {
		It("rejects a second insert of the same username", func() {
			ctx := context.Background()
			username := "user-" + ulid.Make().String()

			Expect(credentials.InsertIfAbsent(ctx, username, "first")).To(Succeed())

			err := credentials.InsertIfAbsent(ctx, username, "second")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, auth.ErrAlreadyExists)).To(BeTrue())

			password, found, err := credentials.Lookup(ctx, username)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeTrue())
			Expect(password).To(Equal("first"))
		})
	})

	Describe("Lookup", func() {
		It("matches usernames exactly", func() {
			ctx := context.Background()
			Expect(credentials.InsertIfAbsent(ctx, "Alice", "secret")).To(Succeed())

			_, found, err := credentials.Lookup(ctx, "alice")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())

			_, found, err = credentials.Lookup(ctx, "nobody")
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeFalse())
		})
	})

	Describe("through the engine", func() {
		It("signs up and signs in", func() {
			ctx := context.Background()
			codec, err := auth.NewCodec(auth.SchemePlain)
			Expect(err).NotTo(HaveOccurred())
			engine, err := auth.NewEngine(credentials, codec)
			Expect(err).NotTo(HaveOccurred())

			Expect(engine.SignUp(ctx, "bob", "pw")).To(Equal(auth.Success(auth.MsgSignupSuccessful)))
			Expect(engine.SignUp(ctx, "bob", "pw")).To(Equal(auth.Failure(auth.MsgUsernameTaken)))
			Expect(engine.SignIn(ctx, "bob", "pw")).To(Equal(auth.Success(auth.MsgLoginSuccessful)))
			Expect(engine.SignIn(ctx, "bob", "PW")).To(Equal(auth.Failure(auth.MsgInvalidCredentials)))
		})
	})
})
