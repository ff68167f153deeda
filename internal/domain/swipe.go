package domain

import "time"

type SwipeAction string

const (
	ActionLike      SwipeAction = "like"
	ActionPass      SwipeAction = "pass"
	ActionSuperLike SwipeAction = "super_like"
)

// Positive reports whether the action expresses interest. Both like and
// super_like count towards reciprocity.
func (a SwipeAction) Positive() bool {
	return a == ActionLike || a == ActionSuperLike
}

func (a SwipeAction) Valid() bool {
	return a == ActionLike || a == ActionPass || a == ActionSuperLike
}

type TargetType string

const (
	TargetDeveloper TargetType = "developer"
	TargetTool      TargetType = "tool"
)

func (t TargetType) Valid() bool {
	return t == TargetDeveloper || t == TargetTool
}

// Swipe records a directional preference. Rows are immutable and never
// deleted; they double as the discovery exclusion list.
type Swipe struct {
	ID         int64       `json:"id" db:"id"`
	SwiperID   string      `json:"swiper_id" db:"swiper_id"`
	TargetID   string      `json:"target_id" db:"target_id"`
	TargetType TargetType  `json:"target_type" db:"target_type"`
	Action     SwipeAction `json:"action" db:"action"`
	CreatedAt  time.Time   `json:"created_at" db:"created_at"`
}
