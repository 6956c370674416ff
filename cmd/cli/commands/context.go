package commands

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/jakechorley/roomies/internal/config"
	"github.com/jakechorley/roomies/pkg/clients/gmailclient"
	"github.com/jakechorley/roomies/pkg/clients/sheetsclient"
	"github.com/jakechorley/roomies/pkg/core/services"
	"github.com/jakechorley/roomies/pkg/metrics"
	"github.com/jakechorley/roomies/pkg/peoplesheet"
	"github.com/jakechorley/roomies/pkg/postgres"
	"github.com/jakechorley/roomies/pkg/utils"
)

// AppContext holds the application dependencies shared across all commands.
// Google clients and the database are created on first use so that commands
// working from local files never need to authenticate.
type AppContext struct {
	Env    string
	Cfg    *config.Config
	Logger *zap.Logger
	Ctx    context.Context

	auth         *utils.Authenticator
	sheetsClient *sheetsclient.Client
	gmailClient  *gmailclient.Client
	database     *postgres.DB
	collector    metrics.Collector
}

// Authenticator loads the OAuth client config and returns the shared authenticator
func (a *AppContext) Authenticator() (*utils.Authenticator, error) {
	if a.auth != nil {
		return a.auth, nil
	}

	a.Logger.Debug("Loading OAuth client configuration")
	oauthCfg, err := config.LoadOAuthClientWithEnv(a.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to load OAuth client config: %w", err)
	}

	oauthConfig, err := utils.GetOAuthConfig(oauthCfg)
	if err != nil {
		return nil, err
	}

	store, err := utils.DefaultTokenStore()
	if err != nil {
		return nil, err
	}

	a.auth = utils.NewAuthenticator(oauthConfig, store, a.Env)
	return a.auth, nil
}

// SheetsClient returns the Google Sheets client, authenticating if needed
func (a *AppContext) SheetsClient() (*sheetsclient.Client, error) {
	if a.sheetsClient != nil {
		return a.sheetsClient, nil
	}

	auth, err := a.Authenticator()
	if err != nil {
		return nil, err
	}

	a.Logger.Info("Initializing sheets client")
	a.sheetsClient, err = sheetsclient.NewClient(a.Ctx, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}
	return a.sheetsClient, nil
}

// GmailClient returns the Gmail client, sharing the sheets client's token
func (a *AppContext) GmailClient() (*gmailclient.Client, error) {
	if a.gmailClient != nil {
		return a.gmailClient, nil
	}

	auth, err := a.Authenticator()
	if err != nil {
		return nil, err
	}

	a.Logger.Info("Initializing gmail client")
	a.gmailClient, err = gmailclient.NewClient(a.Ctx, auth, a.Cfg.Email.GmailUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}
	return a.gmailClient, nil
}

// HasDatabase reports whether run history is configured
func (a *AppContext) HasDatabase() bool {
	return a.Cfg.Database.URL != ""
}

// Database connects to the run history store and applies migrations
func (a *AppContext) Database() (*postgres.DB, error) {
	if a.database != nil {
		return a.database, nil
	}
	if !a.HasDatabase() {
		return nil, errors.New("no database configured (database.url)")
	}

	a.Logger.Info("Connecting to database")
	database, err := postgres.Open(a.Ctx, a.Cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.database = database
	return a.database, nil
}

// Metrics returns the search metrics collector. When a listen address is
// configured the first call starts the metrics server for the app's lifetime.
func (a *AppContext) Metrics() metrics.Collector {
	if a.collector != nil {
		return a.collector
	}

	if a.Cfg.Metrics.ListenAddr == "" {
		a.collector = metrics.NewNop()
		return a.collector
	}

	a.collector = metrics.NewPrometheus(nil, metrics.DefaultNamespace)
	go func() {
		if err := metrics.Serve(a.Ctx, a.Cfg.Metrics.ListenAddr, a.Logger); err != nil {
			a.Logger.Error("Metrics server stopped", zap.Error(err))
		}
	}()
	return a.collector
}

// PeopleSource picks where people are read from: the file when a path is
// given, otherwise the configured people sheet. tab overrides the configured tab.
func (a *AppContext) PeopleSource(path, tab string) (services.PeopleSource, error) {
	if path != "" {
		return peoplesheet.FileSource{Path: path}, nil
	}

	if a.Cfg.Input.PeopleSheetID == "" {
		return nil, errors.New("no people file given and no people sheet configured (input.peopleSheetID)")
	}
	if tab == "" {
		tab = a.Cfg.Input.PeopleTab
	}

	client, err := a.SheetsClient()
	if err != nil {
		return nil, err
	}
	return sheetsclient.NewPeopleSource(client, a.Cfg.Input.PeopleSheetID, tab), nil
}

// Close releases the database connection
func (a *AppContext) Close() {
	if a.database != nil {
		a.database.Close()
	}
}
