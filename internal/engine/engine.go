// Package engine runs the turn pipeline: normalize the text, classify it
// against session context, and when the intent calls for a retail search,
// resolve the location and state system and produce a ranked store list.
package engine

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"caddie/internal/normalize"
	"caddie/internal/observability"
	"caddie/internal/places"
	"caddie/internal/resolve"
	"caddie/internal/retail"
	"caddie/internal/session"
)

// ClarificationKind names the single missing piece of information that
// blocks a turn.
type ClarificationKind string

const (
	ClarifySubject  ClarificationKind = "subject"
	ClarifyLocation ClarificationKind = "location"
)

// One canonical prompt per clarification kind.
var clarificationPrompts = map[ClarificationKind]string{
	ClarifySubject:  "Are you asking about cigars or bourbon?",
	ClarifyLocation: "What city and state should I search? A ZIP code works too.",
}

// RetailSystem is the resolved market summary attached to allocation-search
// resolutions.
type RetailSystem struct {
	StateCode    string            `json:"state_code,omitempty"`
	SystemType   retail.SystemType `json:"system_type"`
	Guidance     string            `json:"guidance"`
	StateWebsite string            `json:"state_website,omitempty"`
}

// Resolution is the full outcome of one processed turn.
type Resolution struct {
	SessionID           string                `json:"session_id"`
	Intent              resolve.Intent        `json:"intent"`
	Subject             resolve.Subject       `json:"subject"`
	NeedsClarification  bool                  `json:"needs_clarification"`
	ClarificationKind   ClarificationKind     `json:"clarification_kind,omitempty"`
	ClarificationPrompt string                `json:"clarification_prompt,omitempty"`
	Location            string                `json:"location,omitempty"`
	RetailSystem        *RetailSystem         `json:"retail_system,omitempty"`
	RankedStores        []places.Candidate    `json:"ranked_stores,omitempty"`
	CuratedStores       []retail.CuratedStore `json:"curated_stores,omitempty"`
	Reply               string                `json:"reply,omitempty"`
}

// Engine wires the pipeline to its collaborators. Each session id is
// processed by at most one goroutine at a time; overlapping requests for the
// same id queue on a per-id lock so no update is lost.
type Engine struct {
	store        session.Store
	searcher     places.Searcher
	filter       *retail.Engine
	metrics      *observability.Metrics
	historyLimit int

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func New(store session.Store, searcher places.Searcher, metrics *observability.Metrics, historyLimit int) *Engine {
	return &Engine{
		store:        store,
		searcher:     searcher,
		filter:       retail.NewEngine(searcher),
		metrics:      metrics,
		historyLimit: historyLimit,
		locks:        make(map[string]*sync.Mutex),
	}
}

func (e *Engine) lockFor(id string) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.locks[id]
	if !ok {
		l = &sync.Mutex{}
		e.locks[id] = l
	}
	return l
}

// ProcessTurn handles one user turn. All session updates for the turn are
// committed in a single Save at the end; if anything fails before that, the
// persisted session is untouched.
func (e *Engine) ProcessTurn(ctx context.Context, sessionID, rawText string) (Resolution, error) {
	lock := e.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	stored, err := e.store.Get(ctx, sessionID)
	if err != nil {
		return Resolution{}, fmt.Errorf("load session: %w", err)
	}
	sess := stored.Clone()

	text := normalize.Correct(rawText)
	cls, routeText := e.route(text, sess)
	rememberSubject(sess, cls.Subject, routeText)
	e.metrics.TurnsProcessed.WithLabelValues(string(cls.Intent), string(cls.Subject)).Inc()

	res := Resolution{
		SessionID: sessionID,
		Intent:    cls.Intent,
		Subject:   cls.Subject,
	}

	switch {
	case needsSubject(cls, routeText):
		e.clarify(&res, sess, ClarifySubject, routeText)
	case cls.Intent == resolve.IntentCigarRetailSearch:
		e.cigarSearch(ctx, &res, routeText, sess)
	case cls.Intent == resolve.IntentBourbonAllocationSearch:
		e.allocationSearch(ctx, &res, routeText, sess)
	}

	if res.Reply != "" {
		sess.AppendTurn(session.RoleAssistant, res.Reply)
	}
	sess.TruncateHistory(e.historyLimit)

	if err := e.store.Save(ctx, sess); err != nil {
		e.metrics.SessionSaves.WithLabelValues("error").Inc()
		return Resolution{}, fmt.Errorf("save session: %w", err)
	}
	e.metrics.SessionSaves.WithLabelValues("ok").Inc()
	return res, nil
}

// route classifies the turn and picks which text drives it. An outstanding
// clarification is resolved here, one turn only: the reply is folded into
// session state (location or, via history, subject) and the original request
// re-routed, unless the reply itself routes somewhere new.
func (e *Engine) route(text string, sess *session.Session) (resolve.Classification, string) {
	kind, pendingText, pending := sess.ClearPending()
	if !pending {
		cls := resolve.Classify(text, sess)
		sess.AppendTurn(session.RoleUser, text)
		return cls, text
	}

	switch kind {
	case string(ClarifyLocation):
		if loc, ok := resolve.ExtractLocation(text, sess); ok {
			sess.StoredLocation = loc
		}
	case string(ClarifySubject):
		// Remember the answered domain so it survives further
		// clarification rounds.
		rememberSubject(sess, resolve.InferSubject(text, nil), text)
	}

	cls := resolve.Classify(text, sess)
	sess.AppendTurn(session.RoleUser, text)
	if cls.Intent != resolve.IntentOther {
		return cls, text
	}
	return resolve.Classify(pendingText, sess), pendingText
}

var strengthPattern = regexp.MustCompile(`\b(mild|medium|full|robust|bold)\b`)

// rememberSubject commits the turn's resolved domain to the matching
// last-discussed slot, along with any strength descriptor worth keeping as a
// filter for follow-up requests. A specific value already in the slot is
// never overwritten with the generic marker.
func rememberSubject(sess *session.Session, subj resolve.Subject, text string) {
	strength := strengthPattern.FindString(strings.ToLower(text))
	switch subj {
	case resolve.SubjectCigar:
		if sess.LastCigarDiscussed == "" {
			sess.LastCigarDiscussed = "cigar"
		}
		if strength != "" {
			if sess.LastCigarAttributes == nil {
				sess.LastCigarAttributes = make(map[string]string)
			}
			sess.LastCigarAttributes["strength"] = strength
		}
	case resolve.SubjectBourbon:
		if sess.LastBourbonDiscussed == "" {
			sess.LastBourbonDiscussed = "bourbon"
		}
		if strength != "" {
			if sess.LastBourbonAttributes == nil {
				sess.LastBourbonAttributes = make(map[string]string)
			}
			sess.LastBourbonAttributes["strength"] = strength
		}
	}
}

// needsSubject reports whether the turn asks for something but its product
// domain could not be resolved.
func needsSubject(cls resolve.Classification, text string) bool {
	if cls.Subject != resolve.SubjectAmbiguous {
		return false
	}
	if cls.Intent == resolve.IntentMoreRequest {
		return true
	}
	return cls.Intent == resolve.IntentOther && resolve.WantsAction(text)
}

func (e *Engine) clarify(res *Resolution, sess *session.Session, kind ClarificationKind, routeText string) {
	res.NeedsClarification = true
	res.ClarificationKind = kind
	res.ClarificationPrompt = clarificationPrompts[kind]
	res.Reply = res.ClarificationPrompt
	sess.SetPending(string(kind), routeText)
	e.metrics.Clarifications.WithLabelValues(string(kind)).Inc()
}

// turnLocation finds where to search: the turn itself, else the session's
// remembered location.
func turnLocation(text string, sess *session.Session) (string, bool) {
	if loc, ok := resolve.ExtractLocation(text, sess); ok {
		return loc, true
	}
	if sess.StoredLocation != "" {
		return sess.StoredLocation, true
	}
	return "", false
}

func (e *Engine) cigarSearch(ctx context.Context, res *Resolution, text string, sess *session.Session) {
	loc, ok := turnLocation(text, sess)
	if !ok {
		e.clarify(res, sess, ClarifyLocation, text)
		return
	}
	res.Location = loc
	sess.StoredLocation = loc

	found := e.search(ctx, retail.CigarQuery(loc), loc)
	ranked := retail.FilterCigarRetailers(found)
	ranked = mergeCurated(retail.CigarRetailersFor(loc), ranked)
	if len(ranked) > maxStores {
		ranked = ranked[:maxStores]
	}

	res.RankedStores = ranked
	res.Reply = renderCigar(loc, ranked)
	e.metrics.StoresReturned.Observe(float64(len(ranked)))
}

func (e *Engine) allocationSearch(ctx context.Context, res *Resolution, text string, sess *session.Session) {
	loc, ok := turnLocation(text, sess)
	if !ok {
		e.clarify(res, sess, ClarifyLocation, text)
		return
	}
	res.Location = loc
	sess.StoredLocation = loc

	stateCode, _ := resolve.StateCode(loc)
	cfg := retail.Resolve(stateCode)

	found := e.search(ctx, retail.BuildQuery(cfg, loc), loc)
	ranked := e.filter.FilterAndRank(ctx, found, stateCode, loc)
	if len(ranked) > maxStores {
		ranked = ranked[:maxStores]
	}

	res.RetailSystem = &RetailSystem{
		StateCode:    cfg.StateCode,
		SystemType:   cfg.SystemType,
		Guidance:     cfg.GuidanceText,
		StateWebsite: cfg.StateWebsite,
	}
	res.RankedStores = ranked
	res.CuratedStores = retail.AllocationStoresFor(loc)
	res.Reply = renderHunt(loc, cfg, res.CuratedStores, ranked)
	e.metrics.StoresReturned.Observe(float64(len(ranked)))
}

// search runs the external query. A provider failure is recorded and treated
// as zero candidates; the turn still completes.
func (e *Engine) search(ctx context.Context, query, location string) []places.Candidate {
	if e.searcher == nil {
		return nil
	}
	start := time.Now()
	found, err := e.searcher.Search(ctx, query, location)
	e.metrics.ObserveSearchLatency(time.Since(start))
	switch {
	case err != nil:
		e.metrics.SearchRequests.WithLabelValues("error").Inc()
		return nil
	case len(found) == 0:
		e.metrics.SearchRequests.WithLabelValues("empty").Inc()
		return nil
	default:
		e.metrics.SearchRequests.WithLabelValues("ok").Inc()
		return found
	}
}

// mergeCurated puts curated shops ahead of searched ones, deduplicating by
// lowercased name.
func mergeCurated(curated []retail.CuratedStore, found []places.Candidate) []places.Candidate {
	if len(curated) == 0 {
		return found
	}
	out := make([]places.Candidate, 0, len(curated)+len(found))
	seen := make(map[string]struct{}, len(curated)+len(found))
	for _, c := range curated {
		out = append(out, places.Candidate{Name: c.Name, Address: c.Address})
		seen[lowerKey(c.Name)] = struct{}{}
	}
	for _, c := range found {
		if _, dup := seen[lowerKey(c.Name)]; dup {
			continue
		}
		seen[lowerKey(c.Name)] = struct{}{}
		out = append(out, c)
	}
	return out
}

func lowerKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
