package bootstrap

import (
	"github.com/jonboulle/clockwork"

	"aspenkiosk/internal/config"
	"aspenkiosk/internal/domain"
	"aspenkiosk/internal/fallback"
	"aspenkiosk/internal/media"
	"aspenkiosk/internal/nav"
	"aspenkiosk/internal/playback"
	"aspenkiosk/internal/ports"
	"aspenkiosk/internal/prefs"
	"aspenkiosk/internal/safety"
	"aspenkiosk/internal/store"
)

// Services is the assembled runtime graph.
type Services struct {
	Config    config.Config
	Session   *playback.Session
	Emergency *safety.Emergency
	Activity  *safety.Activity
	History   *nav.History
	Prefs     *prefs.Prefs
	Resolver  *fallback.Resolver
	Store     *store.Client
	Media     *media.Dispatcher
}

// Build wires all backend dependencies for the current runtime.
func Build(sink ports.EventSink, emit media.Emitter) (Services, error) {
	cfg, err := config.Load()
	if err != nil {
		return Services{}, err
	}

	resolver, err := fallback.NewResolver(cfg.Fallback.LinksFile)
	if err != nil {
		return Services{}, err
	}

	clock := clockwork.NewRealClock()
	dispatcher := media.NewDispatcher()
	emergency := safety.NewEmergency()
	activity := safety.NewActivity()

	session := playback.NewSession(
		media.NewFactory(emit, dispatcher),
		clock,
		emergency,
		sink,
		playback.SessionConfig{
			RetryDelay: cfg.Playback.AutoplayRetryDelay,
			StartDelay: cfg.Playback.StartDelay,
		},
	)

	return Services{
		Config:    cfg,
		Session:   session,
		Emergency: emergency,
		Activity:  activity,
		History:   nav.NewHistory(clock, cfg.Nav.HistoryLimit),
		Prefs:     prefs.New(domain.Language(cfg.DefaultLanguage)),
		Resolver:  resolver,
		Store:     store.NewClient(cfg.Store.BaseURL, cfg.Store.Timeout, cfg.Store.DefaultVolumeCap),
		Media:     dispatcher,
	}, nil
}
