package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/scout-schedule/internal/domain/team"
	"github.com/riskibarqy/scout-schedule/internal/platform/cache"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

const (
	memoNamePrefix = "team-name:"
	memoLogoPrefix = "team-logo:"

	defaultPrefetchWorkers = 4
)

type TeamIdentityConfig struct {
	PlaceholderLogo string
	// DirectURLFallback uses a media item's direct_url when no avatar is embedded.
	DirectURLFallback bool
	PrefetchWorkers   int
}

// TeamIdentityService resolves team display names and logos, memoized for the
// lifetime of memo. Fetch failures resolve to a default and the default is
// memoized too, so a team is fetched at most once until it is forgotten. A
// cancelled caller gets the default without poisoning the memo.
type TeamIdentityService struct {
	provider    TeamProvider
	credentials *CredentialService
	memo        *cache.Store[string]
	cfg         TeamIdentityConfig
	logger      *logging.Logger
	now         func() time.Time
}

func NewTeamIdentityService(
	provider TeamProvider,
	credentials *CredentialService,
	memo *cache.Store[string],
	cfg TeamIdentityConfig,
	logger *logging.Logger,
) *TeamIdentityService {
	if logger == nil {
		logger = logging.Default()
	}
	if memo == nil {
		memo = cache.NewStore[string](0)
	}
	if strings.TrimSpace(cfg.PlaceholderLogo) == "" {
		cfg.PlaceholderLogo = team.PlaceholderLogo
	}
	if cfg.PrefetchWorkers < 1 {
		cfg.PrefetchWorkers = defaultPrefetchWorkers
	}

	return &TeamIdentityService{
		provider:    provider,
		credentials: credentials,
		memo:        memo,
		cfg:         cfg,
		logger:      logger,
		now:         time.Now,
	}
}

// Resolve fetches name and logo concurrently.
func (s *TeamIdentityService) Resolve(ctx context.Context, teamNumber int) team.Identity {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamIdentityService.Resolve")
	defer span.End()

	identity := team.Identity{Number: teamNumber}
	var wg conc.WaitGroup
	wg.Go(func() { identity.DisplayName = s.ResolveName(ctx, teamNumber) })
	wg.Go(func() { identity.Logo = s.ResolveLogo(ctx, teamNumber) })
	wg.Wait()

	return identity
}

// ResolveLatest resolves teamNumber under a fresh token of gen and calls apply
// only if no newer Begin happened meanwhile. It reports whether apply ran.
func (s *TeamIdentityService) ResolveLatest(ctx context.Context, gen *Generation, teamNumber int, apply func(team.Identity)) bool {
	token := gen.Begin()
	identity := s.Resolve(ctx, teamNumber)
	if !gen.IsCurrent(token) {
		s.logger.DebugContext(ctx, "discard stale team identity", "team_number", teamNumber)
		return false
	}
	if apply != nil {
		apply(identity)
	}
	return true
}

func (s *TeamIdentityService) ResolveName(ctx context.Context, teamNumber int) string {
	fallback := team.DefaultDisplayName(teamNumber)
	if teamNumber <= 0 {
		return fallback
	}

	name, _ := s.memo.GetOrLoad(ctx, memoNamePrefix+strconv.Itoa(teamNumber), func(ctx context.Context) (string, error) {
		apiKey, ok := s.credentials.Get(ctx)
		if !ok {
			return fallback, nil
		}

		info, err := s.provider.FetchTeam(ctx, teamNumber, apiKey)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			s.logger.WarnContext(ctx, "fetch team name failed, using default", "team_number", teamNumber, "error", err)
			return fallback, nil
		}
		return team.DisplayNameOr(teamNumber, info.Nickname), nil
	})
	if name == "" {
		return fallback
	}
	return name
}

func (s *TeamIdentityService) ResolveLogo(ctx context.Context, teamNumber int) string {
	fallback := s.cfg.PlaceholderLogo
	if teamNumber <= 0 {
		return fallback
	}

	logo, _ := s.memo.GetOrLoad(ctx, memoLogoPrefix+strconv.Itoa(teamNumber), func(ctx context.Context) (string, error) {
		apiKey, ok := s.credentials.Get(ctx)
		if !ok {
			return fallback, nil
		}

		year := s.now().Year()
		media, err := s.provider.FetchTeamMedia(ctx, teamNumber, year, apiKey)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return "", ctxErr
			}
			s.logger.WarnContext(ctx, "fetch team media failed, using placeholder logo",
				"team_number", teamNumber, "year", year, "error", err)
			return fallback, nil
		}
		if logo := s.pickLogo(media); logo != "" {
			return logo, nil
		}
		return fallback, nil
	})
	if logo == "" {
		return fallback
	}
	return logo
}

func (s *TeamIdentityService) pickLogo(media []ExternalMedia) string {
	for _, item := range media {
		if item.Type == MediaTypeAvatar && strings.TrimSpace(item.Base64Image) != "" {
			return team.AvatarDataURL(item.Base64Image)
		}
	}
	if !s.cfg.DirectURLFallback {
		return ""
	}
	for _, item := range media {
		if u := strings.TrimSpace(item.DirectURL); u != "" {
			return u
		}
	}
	return ""
}

// Forget drops both memo entries for a team so the next lookup refetches.
func (s *TeamIdentityService) Forget(ctx context.Context, teamNumber int) {
	key := strconv.Itoa(teamNumber)
	s.memo.Delete(ctx, memoNamePrefix+key)
	s.memo.Delete(ctx, memoLogoPrefix+key)
}

// ForgetAll empties the memo, e.g. after the API key changed.
func (s *TeamIdentityService) ForgetAll(ctx context.Context) {
	s.memo.DeletePrefix(ctx, memoNamePrefix)
	s.memo.DeletePrefix(ctx, memoLogoPrefix)
}

// Prefetch warms the memo for every distinct positive team number using a
// bounded worker pool. It returns once all lookups finished or ctx is done.
func (s *TeamIdentityService) Prefetch(ctx context.Context, teamNumbers []int) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamIdentityService.Prefetch")
	defer span.End()

	seen := make(map[int]struct{}, len(teamNumbers))
	unique := make([]int, 0, len(teamNumbers))
	for _, n := range teamNumbers {
		if n <= 0 {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		unique = append(unique, n)
	}
	if len(unique) == 0 {
		return 0, nil
	}

	pool, err := ants.NewPool(s.cfg.PrefetchWorkers)
	if err != nil {
		return 0, fmt.Errorf("create prefetch pool: %w", err)
	}
	defer pool.Release()

	var (
		workers sync.WaitGroup
		mu      sync.Mutex
		done    int
	)
	for _, n := range unique {
		if ctx.Err() != nil {
			break
		}
		n := n
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			if ctx.Err() != nil {
				return
			}
			s.Resolve(ctx, n)
			mu.Lock()
			done++
			mu.Unlock()
		}); err != nil {
			workers.Done()
			s.logger.WarnContext(ctx, "submit team prefetch failed", "team_number", n, "error", err)
		}
	}
	workers.Wait()

	s.logger.InfoContext(ctx, "team identities prefetched", "requested", len(unique), "resolved", done)
	if err := ctx.Err(); err != nil {
		return done, err
	}
	return done, nil
}
