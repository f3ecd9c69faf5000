package engine

import (
	"errors"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"beandex/internal/storage"
)

const (
	// LuckyBonusChance is the probability a lucky bonus fires on AddItem.
	LuckyBonusChance = 0.10
	// LuckyBonusBaseXP is multiplied by the rolled multiplier tier.
	LuckyBonusBaseXP = 10
	// LoginStreakCap bounds the consecutive-day login count used for the
	// daily login bonus.
	LoginStreakCap = 10
)

// ChallengeReward is queued when the day's challenge completes.
type ChallengeReward struct {
	Challenge DailyChallenge `json:"challenge"`
	XP        int            `json:"xp"`
}

// LevelUpEvent is queued when total XP crosses into a new level.
type LevelUpEvent struct {
	Level int       `json:"level"`
	Info  LevelInfo `json:"info"`
}

// LoginBonus is queued by CheckDailyLoginBonus.
type LoginBonus struct {
	XP     int `json:"xp"`
	Streak int `json:"streak"`
}

// LuckyBonus is queued when the lucky roll fires on AddItem.
type LuckyBonus struct {
	XP         int `json:"xp"`
	Multiplier int `json:"multiplier"`
}

// Store is the collection state container. Every mutation is a single
// synchronous state transition guarded by one mutex; persistence is
// write-through and fire-and-forget.
type Store struct {
	mu      sync.Mutex
	now     func() time.Time
	loc     *time.Location
	rand    func() float64
	log     *slog.Logger
	persist storage.Store

	collection           []storage.Item
	userName             string
	onboarded            bool
	unlocked             map[string]time.Time
	collectionMilestones map[int]bool
	valueMilestones      map[int]bool
	streakMilestones     map[int]bool
	currentStreak        int
	longestStreak        int
	lastScanDate         Date
	totalXP              int
	lastKnownLevel       int
	completedChallenges  map[string]bool
	loginStreak          int
	lastLoginDate        Date

	// One un-displayed event per kind, last write wins. The consuming
	// screen clears its slot explicitly after display.
	pendingAchievements        []Unlock
	pendingChallenge           *ChallengeReward
	pendingLevelUp             *LevelUpEvent
	pendingCollectionMilestone *Milestone
	pendingStreakMilestone     *Milestone
	pendingValueMilestone      *Milestone
	pendingLoginBonus          *LoginBonus
	pendingLuckyBonus          *LuckyBonus
}

type Option func(*Store)

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLocation sets the timezone used to derive calendar dates.
func WithLocation(loc *time.Location) Option {
	return func(s *Store) { s.loc = loc }
}

// WithRand injects the random source for the lucky bonus roll. The
// function must return values in [0, 1).
func WithRand(fn func() float64) Option {
	return func(s *Store) { s.rand = fn }
}

// WithLogger sets the logger used to report swallowed persistence errors.
func WithLogger(log *slog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// NewStore builds a store backed by persist (nil for memory-only) and
// loads the persisted document if one exists.
func NewStore(persist storage.Store, opts ...Option) (*Store, error) {
	s := &Store{
		now:                  time.Now,
		loc:                  time.Local,
		rand:                 rand.Float64,
		log:                  slog.Default(),
		persist:              persist,
		collection:           []storage.Item{},
		unlocked:             map[string]time.Time{},
		collectionMilestones: map[int]bool{},
		valueMilestones:      map[int]bool{},
		streakMilestones:     map[int]bool{},
		completedChallenges:  map[string]bool{},
		lastKnownLevel:       1,
	}
	for _, opt := range opts {
		opt(s)
	}

	if persist != nil {
		snap, err := persist.Load()
		if err != nil {
			return nil, err
		}
		if snap != nil {
			s.restore(snap)
		}
	}
	return s, nil
}

func (s *Store) restore(snap *storage.Snapshot) {
	snap.Normalize()
	s.collection = append([]storage.Item{}, snap.Collection...)
	s.userName = snap.UserName
	s.onboarded = snap.Onboarded
	for id, at := range snap.UnlockedAchievements {
		s.unlocked[id] = at
	}
	for _, th := range snap.CollectionMilestones {
		s.collectionMilestones[th] = true
	}
	for _, th := range snap.ValueMilestones {
		s.valueMilestones[th] = true
	}
	for _, th := range snap.StreakMilestones {
		s.streakMilestones[th] = true
	}
	s.currentStreak = snap.CurrentStreak
	s.longestStreak = snap.LongestStreak
	if d, err := ParseDate(snap.LastScanDate); err == nil {
		s.lastScanDate = d
	}
	s.totalXP = snap.TotalXP
	s.lastKnownLevel = snap.LastKnownLevel
	if s.lastKnownLevel < 1 {
		s.lastKnownLevel = CalculateLevel(s.totalXP).Level
	}
	for _, id := range snap.CompletedChallenges {
		s.completedChallenges[id] = true
	}
	s.loginStreak = snap.LoginStreak
	if d, err := ParseDate(snap.LastLoginDate); err == nil {
		s.lastLoginDate = d
	}
}

func (s *Store) snapshot() *storage.Snapshot {
	snap := &storage.Snapshot{
		Collection:           append([]storage.Item{}, s.collection...),
		UserName:             s.userName,
		Onboarded:            s.onboarded,
		UnlockedAchievements: map[string]time.Time{},
		CurrentStreak:        s.currentStreak,
		LongestStreak:        s.longestStreak,
		TotalXP:              s.totalXP,
		LastKnownLevel:       s.lastKnownLevel,
		LoginStreak:          s.loginStreak,
	}
	for id, at := range s.unlocked {
		snap.UnlockedAchievements[id] = at
	}
	snap.CollectionMilestones = sortedKeys(s.collectionMilestones)
	snap.ValueMilestones = sortedKeys(s.valueMilestones)
	snap.StreakMilestones = sortedKeys(s.streakMilestones)
	if !s.lastScanDate.IsZero() {
		snap.LastScanDate = s.lastScanDate.String()
	}
	if !s.lastLoginDate.IsZero() {
		snap.LastLoginDate = s.lastLoginDate.String()
	}
	ids := make([]string, 0, len(s.completedChallenges))
	for id := range s.completedChallenges {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	snap.CompletedChallenges = ids
	snap.Normalize()
	return snap
}

func sortedKeys(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// save is fire-and-forget: callers never block on or observe persistence
// failures.
func (s *Store) save() {
	if s.persist == nil {
		return
	}
	if err := s.persist.Save(s.snapshot()); err != nil {
		s.log.Warn("persist collection state", "error", err)
	}
}

// AddItem runs the full scan pipeline: streak update, insert, milestone
// and achievement evaluation, daily challenge, lucky bonus, persistence.
// The returned item carries its assigned id and timestamp.
func (s *Store) AddItem(in AddItemInput) (storage.Item, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return storage.Item{}, errors.New("item name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := DateOf(now, s.loc)

	// Step 1: streak. A second scan on the same day does not advance it.
	switch s.lastScanDate {
	case today:
	case today.AddDays(-1):
		s.currentStreak++
	default:
		s.currentStreak = 1
	}
	if s.currentStreak > s.longestStreak {
		s.longestStreak = s.currentStreak
	}
	s.lastScanDate = today

	tier := in.Tier
	if !tier.IsValid() {
		tier = TierForValue(in.ValueHigh)
	}
	item := storage.Item{
		ID:                 uuid.NewString(),
		Name:               name,
		AnimalType:         in.AnimalType,
		Variant:            in.Variant,
		Colors:             append([]string{}, in.Colors...),
		Thumbnail:          in.Thumbnail,
		EstimatedValueLow:  in.ValueLow,
		EstimatedValueHigh: in.ValueHigh,
		AdjustedValueLow:   in.AdjustedLow,
		AdjustedValueHigh:  in.AdjustedHigh,
		Tier:               int(tier),
		Condition:          in.Condition,
		PelletType:         in.PelletType,
		ValueNotes:         in.ValueNotes,
		Timestamp:          now,
	}

	// Step 2: most-recent-first ordering is an invariant the UI relies on.
	s.collection = append([]storage.Item{item}, s.collection...)

	// Step 3: collection-size milestone (exact match).
	if m := exactMilestone(CollectionMilestones, len(s.collection), s.collectionMilestones); m != nil {
		s.collectionMilestones[m.Threshold] = true
		s.pendingCollectionMilestone = m
	}

	// Step 4: streak milestone (exact match).
	if m := exactMilestone(StreakMilestones, s.currentStreak, s.streakMilestones); m != nil {
		s.streakMilestones[m.Threshold] = true
		s.pendingStreakMilestone = m
	}

	// Step 5: daily challenge.
	ch := ChallengeForDate(today)
	if !s.completedChallenges[ch.ID] {
		todays := s.itemsOnLocked(today)
		if CheckChallengeCompletion(ch, item, todays) {
			s.completedChallenges[ch.ID] = true
			ch.Completed = true
			s.pendingChallenge = &ChallengeReward{Challenge: ch, XP: ch.XP}
			s.awardXPLocked(ch.XP)
		}
	}

	// Step 6: achievements.
	unlockedIDs := make(map[string]bool, len(s.unlocked))
	for id := range s.unlocked {
		unlockedIDs[id] = true
	}
	if newly := CheckAchievements(s.collection, unlockedIDs, now, s.loc); len(newly) > 0 {
		for _, u := range newly {
			s.unlocked[u.ID] = u.UnlockedAt
		}
		s.pendingAchievements = newly
	}

	// Step 7: lucky bonus.
	if s.rand() < LuckyBonusChance {
		mult := luckyMultiplier(s.rand())
		bonus := LuckyBonusBaseXP * mult
		s.pendingLuckyBonus = &LuckyBonus{XP: bonus, Multiplier: mult}
		s.awardXPLocked(bonus)
	}

	// Step 8: value milestone (crossing; the metric is continuous).
	_, totalHigh := s.totalValueLocked()
	if crossed := crossedMilestones(ValueMilestones, totalHigh, s.valueMilestones); len(crossed) > 0 {
		for i := range crossed {
			s.valueMilestones[crossed[i].Threshold] = true
			m := crossed[i]
			s.pendingValueMilestone = &m
		}
	}

	s.save()
	return item, nil
}

// luckyMultiplier maps a uniform roll to the tiered distribution:
// 2x (70%), 3x (20%), 4x (8%), 5x (2%).
func luckyMultiplier(roll float64) int {
	switch {
	case roll < 0.70:
		return 2
	case roll < 0.90:
		return 3
	case roll < 0.98:
		return 4
	default:
		return 5
	}
}

// awardXPLocked adds XP and queues a level-up when the derived level
// passes the cached one. Two level-ups in one pipeline collapse to the
// most recent (single slot, not a queue).
func (s *Store) awardXPLocked(xp int) {
	s.totalXP += xp
	info := CalculateLevel(s.totalXP)
	if info.Level > s.lastKnownLevel {
		s.pendingLevelUp = &LevelUpEvent{Level: info.Level, Info: info}
		s.lastKnownLevel = info.Level
	}
}

func (s *Store) itemsOnLocked(d Date) []storage.Item {
	var out []storage.Item
	for _, it := range s.collection {
		if DateOf(it.Timestamp, s.loc) == d {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) totalValueLocked() (low, high float64) {
	for _, it := range s.collection {
		low += it.EffectiveLow()
		high += it.EffectiveHigh()
	}
	return low, high
}

// RemoveItem deletes by id. Gamification state is monotonic: counters,
// achievements and milestones all survive deletions.
func (s *Store) RemoveItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, it := range s.collection {
		if it.ID == id {
			s.collection = append(s.collection[:i], s.collection[i+1:]...)
			s.save()
			return true
		}
	}
	return false
}

// ClearCollection empties the collection list only; XP, streak,
// achievement and milestone state is untouched.
func (s *Store) ClearCollection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collection = []storage.Item{}
	s.save()
}

func (s *Store) SetUserName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userName = strings.TrimSpace(name)
	s.save()
}

func (s *Store) CompleteOnboarding() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onboarded = true
	s.save()
}

// CheckDailyLoginBonus awards the once-per-day login XP. The login streak
// is tracked independently of the scan streak with the same yesterday/today
// adjacency test, capped at LoginStreakCap. Returns nil when today's bonus
// was already claimed.
func (s *Store) CheckDailyLoginBonus() *LoginBonus {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := DateOf(s.now(), s.loc)
	if s.lastLoginDate == today {
		return nil
	}
	if s.lastLoginDate == today.AddDays(-1) {
		s.loginStreak++
	} else {
		s.loginStreak = 1
	}
	if s.loginStreak > LoginStreakCap {
		s.loginStreak = LoginStreakCap
	}
	s.lastLoginDate = today

	bonus := &LoginBonus{
		XP:     10 + (s.loginStreak-1)*5,
		Streak: s.loginStreak,
	}
	s.awardXPLocked(bonus.XP)
	s.pendingLoginBonus = bonus
	s.save()
	return bonus
}
