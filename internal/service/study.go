package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DanRulev/vocamission.git/internal/client"
	"github.com/DanRulev/vocamission.git/internal/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const lookupWorkers = 4

// StudyProgress is the state after one listen action.
type StudyProgress struct {
	State         models.StudyState
	WordDone      bool
	JustCompleted bool
	Warning       string
}

type StudyS struct {
	words    WordAPII
	activity ActivityAPII
	dict     DictionaryAPII
	status   *StatusS
	account  *AccountS
	store    SessionStoreI
	locks    *userLocks
	log      *zap.Logger
}

func NewStudyService(api APII, dict DictionaryAPII, status *StatusS, account *AccountS, store SessionStoreI, locks *userLocks, log *zap.Logger) *StudyS {
	return &StudyS{
		words:    api,
		activity: api,
		dict:     dict,
		status:   status,
		account:  account,
		store:    store,
		locks:    locks,
		log:      log,
	}
}

// StudyWords loads today's words, or the review list. Progress made earlier
// on the same list is kept.
func (s *StudyS) StudyWords(ctx context.Context, userID int64, review bool) (models.StudyState, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	token, err := s.account.Token(ctx, userID)
	if err != nil {
		return models.StudyState{}, err
	}

	words, err := s.words.TodayWords(ctx, token, review)
	if err != nil && !errors.Is(err, client.ErrNotFound) {
		return models.StudyState{}, s.account.authErr(ctx, userID, err)
	}

	status, err := s.status.TodayStatus(ctx, token)
	if err != nil {
		return models.StudyState{}, s.account.authErr(ctx, userID, err)
	}

	s.enrich(ctx, words)

	state := models.StudyState{
		UserID:    userID,
		Review:    review,
		Words:     words,
		Listened:  make(map[int64]map[models.Language]bool, len(words)),
		Completed: status.WordStudy,
	}

	prev, ok, err := s.store.GetStudy(ctx, userID)
	if err != nil {
		s.log.Warn("failed to load previous study", zap.Int64("user_id", userID), zap.Error(err))
	}
	if ok && prev.Review == review {
		for _, w := range words {
			if l, found := prev.Listened[w.ID]; found {
				state.Listened[w.ID] = l
			}
		}
	}

	if err := s.store.SetStudy(ctx, userID, state); err != nil {
		return models.StudyState{}, fmt.Errorf("failed to save study: %w", err)
	}
	return state, nil
}

// enrich fills in missing pronunciation and example sentences from the
// dictionary. Lookup failures leave the word as it is.
func (s *StudyS) enrich(ctx context.Context, words []models.Word) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(lookupWorkers)

	for i := range words {
		w := &words[i]
		if w.Pronunciation != nil && *w.Pronunciation != "" {
			continue
		}
		g.Go(func() error {
			entry, err := s.dict.Lookup(gctx, w.Text)
			if err != nil {
				s.log.Debug("dictionary lookup failed", zap.String("word", w.Text), zap.Error(err))
				return nil
			}
			if p := strings.TrimSpace(entry.Pronunciation.SourceTextPhonetic); p != "" {
				w.Pronunciation = &p
			}
			if w.ExampleSentenceEnglish == nil {
				for _, d := range entry.Definitions {
					if ex := strings.TrimSpace(d.Example); ex != "" {
						w.ExampleSentenceEnglish = &ex
						break
					}
				}
			}
			return nil
		})
	}

	_ = g.Wait()
}

// Listen records one listen action. Once every word of today's list was
// heard in both languages the study is marked complete; a failed mark is
// tried again on the next action. Review lists are only recorded.
func (s *StudyS) Listen(ctx context.Context, userID int64, wordID int64, lang models.Language) (StudyProgress, error) {
	if !lang.Valid() {
		return StudyProgress{}, fmt.Errorf("unknown language %q", lang)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	state, ok, err := s.store.GetStudy(ctx, userID)
	if err != nil {
		return StudyProgress{}, fmt.Errorf("failed to load study: %w", err)
	}
	if !ok {
		return StudyProgress{}, ErrNoSession
	}

	known := false
	for _, w := range state.Words {
		if w.ID == wordID {
			known = true
			break
		}
	}
	if !known {
		return StudyProgress{}, ErrUnknownWord
	}

	token, err := s.account.Token(ctx, userID)
	if err != nil {
		return StudyProgress{}, err
	}

	if err := s.words.RecordListen(ctx, token, wordID, lang); err != nil {
		return StudyProgress{}, s.account.authErr(ctx, userID, err)
	}

	if state.Listened == nil {
		state.Listened = make(map[int64]map[models.Language]bool)
	}
	if state.Listened[wordID] == nil {
		state.Listened[wordID] = make(map[models.Language]bool)
	}
	state.Listened[wordID][lang] = true

	progress := StudyProgress{WordDone: state.WordDone(wordID)}

	if !state.Review && state.AllDone() && !state.Completed {
		if _, err := s.activity.MarkStudyCompleted(ctx, token); err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				return StudyProgress{}, s.account.authErr(ctx, userID, err)
			}
			s.log.Warn("failed to mark study completed", zap.Int64("user_id", userID), zap.Error(err))
			progress.Warning = WarnNotRecorded
		} else {
			state.Completed = true
			progress.JustCompleted = true
			s.log.Info("word study completed", zap.Int64("user_id", userID), zap.Int("words", len(state.Words)))
		}
	}

	if err := s.store.SetStudy(ctx, userID, state); err != nil {
		return StudyProgress{}, fmt.Errorf("failed to save study: %w", err)
	}

	progress.State = state
	return progress, nil
}
