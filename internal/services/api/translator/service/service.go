// Package service implements the request translator
package service

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"knownkey/internal/adapters/lookup"
	perr "knownkey/internal/platform/errors"
	"knownkey/internal/platform/logger"
	"knownkey/internal/platform/net/http/bind"
	"knownkey/internal/services/api/translator/domain"
)

// Service maps one inbound request to one outbound lookup and one result
// it holds no per request state and is safe for concurrent use
type Service struct {
	Client domain.LookupPort
	Log    logger.Logger
	// Self is the base for relative lookup urls; nil makes them fail
	Self *url.URL

	LookupURL     domain.Resolver
	Authorization domain.Resolver
	HashKey       domain.Resolver
}

// New constructs a translator reading KNOWN_KEY_URL and AUTH_HEADER from cfg on every request
// relative lookup urls resolve against self, never against the inbound Host
func New(cfg domain.Lookuper, client domain.LookupPort, self *url.URL, log logger.Logger) *Service {
	if client == nil {
		panic("translator.Service requires a non-nil LookupPort")
	}
	return &Service{
		Client:        client,
		Log:           log,
		Self:          self,
		LookupURL:     domain.Chain(domain.Config(cfg, "KNOWN_KEY_URL"), domain.Const(domain.DefaultLookupPath)),
		Authorization: domain.Chain(domain.Config(cfg, "AUTH_HEADER"), domain.Header(domain.AuthHeader)),
		HashKey:       domain.Header(domain.HashHeader),
	}
}

// Handle resolves and validates the parameters then performs the lookup
// a missing parameter is logged once and answered with no match without any outbound call
func (s *Service) Handle(r *http.Request) domain.LookupResult {
	in := domain.Resolve(r, s.LookupURL, s.Authorization, s.HashKey)
	if err := bind.Struct(in); err != nil {
		log := logger.RequestFields(r.Context(), s.Log)
		missing := bind.Missing(err)
		log.Error().
			Strs("missing", missing).
			Msgf("missing key(s): %s", strings.Join(missing, ","))
		return domain.NoMatch()
	}
	return s.Lookup(r.Context(), in)
}

// Lookup performs the outbound GET and maps its outcome
// only a 2xx with a JSON body yields its body; everything else yields no match
func (s *Service) Lookup(ctx context.Context, in domain.RequestParameters) domain.LookupResult {
	log := logger.RequestFields(ctx, s.Log)
	target := *in.LookupURL

	endpoint, err := lookup.Resolve(target, s.Self)
	if err != nil {
		log.Error().Err(err).Str("url", target).Msgf("there was a problem calling url %s", target)
		return domain.NoMatch()
	}

	body, err := s.Client.Get(ctx, endpoint, domain.Headers{
		HashKeyHeaderValue: *in.HashKey,
		AuthorizationValue: *in.Authorization,
	})
	switch {
	case err == nil:
		log.Info().Str("url", endpoint).Msgf("request to %s found a match", endpoint)
		return domain.LookupResult(body)
	case perr.IsCode(err, perr.ErrorCodeNotFound):
		log.Info().Str("url", endpoint).Msgf("request to %s found no match", endpoint)
	case lookup.StatusOf(err) != 0:
		status := lookup.StatusOf(err)
		log.Error().Str("url", endpoint).Int("status", status).Msgf("request to %s failed with status: %d", endpoint, status)
	default:
		log.Error().Err(err).Str("url", endpoint).Str("code", perr.CodeOf(err).String()).
			Msgf("there was a problem calling url %s", endpoint)
	}
	return domain.NoMatch()
}
