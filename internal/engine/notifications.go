package engine

// NotificationKind names one pending-notification slot.
type NotificationKind string

const (
	NotifyAchievements        NotificationKind = "achievements"
	NotifyChallenge           NotificationKind = "challenge"
	NotifyLevelUp             NotificationKind = "level_up"
	NotifyCollectionMilestone NotificationKind = "collection_milestone"
	NotifyStreakMilestone     NotificationKind = "streak_milestone"
	NotifyValueMilestone      NotificationKind = "value_milestone"
	NotifyLoginBonus          NotificationKind = "login_bonus"
	NotifyLuckyBonus          NotificationKind = "lucky_bonus"
)

// Notifications is a read-only view of every pending slot. Each slot holds
// at most one un-displayed event; the consumer must clear a slot after
// display or it will resurface on the next read.
type Notifications struct {
	Achievements        []Unlock         `json:"achievements,omitempty"`
	Challenge           *ChallengeReward `json:"challenge,omitempty"`
	LevelUp             *LevelUpEvent    `json:"level_up,omitempty"`
	CollectionMilestone *Milestone       `json:"collection_milestone,omitempty"`
	StreakMilestone     *Milestone       `json:"streak_milestone,omitempty"`
	ValueMilestone      *Milestone       `json:"value_milestone,omitempty"`
	LoginBonus          *LoginBonus      `json:"login_bonus,omitempty"`
	LuckyBonus          *LuckyBonus      `json:"lucky_bonus,omitempty"`
}

func (n Notifications) Empty() bool {
	return len(n.Achievements) == 0 && n.Challenge == nil && n.LevelUp == nil &&
		n.CollectionMilestone == nil && n.StreakMilestone == nil &&
		n.ValueMilestone == nil && n.LoginBonus == nil && n.LuckyBonus == nil
}

// Pending returns every slot's current content.
func (s *Store) Pending() Notifications {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Notifications{
		Achievements:        append([]Unlock{}, s.pendingAchievements...),
		Challenge:           s.pendingChallenge,
		LevelUp:             s.pendingLevelUp,
		CollectionMilestone: s.pendingCollectionMilestone,
		StreakMilestone:     s.pendingStreakMilestone,
		ValueMilestone:      s.pendingValueMilestone,
		LoginBonus:          s.pendingLoginBonus,
		LuckyBonus:          s.pendingLuckyBonus,
	}
}

func (s *Store) PendingAchievements() []Unlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Unlock{}, s.pendingAchievements...)
}

func (s *Store) PendingChallenge() *ChallengeReward {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingChallenge
}

func (s *Store) PendingLevelUp() *LevelUpEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLevelUp
}

func (s *Store) PendingCollectionMilestone() *Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingCollectionMilestone
}

func (s *Store) PendingStreakMilestone() *Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingStreakMilestone
}

func (s *Store) PendingValueMilestone() *Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingValueMilestone
}

func (s *Store) PendingLoginBonus() *LoginBonus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLoginBonus
}

func (s *Store) PendingLuckyBonus() *LuckyBonus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLuckyBonus
}

func (s *Store) ClearPendingAchievements() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingAchievements = nil
}

func (s *Store) ClearPendingChallenge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingChallenge = nil
}

func (s *Store) ClearPendingLevelUp() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLevelUp = nil
}

func (s *Store) ClearPendingCollectionMilestone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingCollectionMilestone = nil
}

func (s *Store) ClearPendingStreakMilestone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingStreakMilestone = nil
}

func (s *Store) ClearPendingValueMilestone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingValueMilestone = nil
}

func (s *Store) ClearPendingLoginBonus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLoginBonus = nil
}

func (s *Store) ClearPendingLuckyBonus() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLuckyBonus = nil
}

// ClearPending clears one slot by kind name. Used by the HTTP surface.
func (s *Store) ClearPending(kind NotificationKind) bool {
	switch kind {
	case NotifyAchievements:
		s.ClearPendingAchievements()
	case NotifyChallenge:
		s.ClearPendingChallenge()
	case NotifyLevelUp:
		s.ClearPendingLevelUp()
	case NotifyCollectionMilestone:
		s.ClearPendingCollectionMilestone()
	case NotifyStreakMilestone:
		s.ClearPendingStreakMilestone()
	case NotifyValueMilestone:
		s.ClearPendingValueMilestone()
	case NotifyLoginBonus:
		s.ClearPendingLoginBonus()
	case NotifyLuckyBonus:
		s.ClearPendingLuckyBonus()
	default:
		return false
	}
	return true
}

// ClearAllPending clears every slot. The CLI uses it after rendering a
// full event summary.
func (s *Store) ClearAllPending() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingAchievements = nil
	s.pendingChallenge = nil
	s.pendingLevelUp = nil
	s.pendingCollectionMilestone = nil
	s.pendingStreakMilestone = nil
	s.pendingValueMilestone = nil
	s.pendingLoginBonus = nil
	s.pendingLuckyBonus = nil
}
