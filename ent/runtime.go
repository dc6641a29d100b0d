// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/skillscroll/ent/answerevent"
	"github.com/abhisek/skillscroll/ent/feedsnapshot"
	"github.com/abhisek/skillscroll/ent/masteryevent"
	"github.com/abhisek/skillscroll/ent/rewardevent"
	"github.com/abhisek/skillscroll/ent/schema"
	"github.com/abhisek/skillscroll/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[0].Descriptor()
	// answerevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	answerevent.SessionIDValidator = answereventDescSessionID.Validators[0].(func(string) error)
	// answereventDescConceptID is the schema descriptor for concept_id field.
	answereventDescConceptID := answereventFields[1].Descriptor()
	// answerevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	answerevent.ConceptIDValidator = answereventDescConceptID.Validators[0].(func(string) error)
	// answereventDescCardID is the schema descriptor for card_id field.
	answereventDescCardID := answereventFields[2].Descriptor()
	// answerevent.CardIDValidator is a validator for the "card_id" field. It is called by the builders before save.
	answerevent.CardIDValidator = answereventDescCardID.Validators[0].(func(string) error)
	// answereventDescPrompt is the schema descriptor for prompt field.
	answereventDescPrompt := answereventFields[3].Descriptor()
	// answerevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	answerevent.PromptValidator = answereventDescPrompt.Validators[0].(func(string) error)
	// answereventDescExpectedAnswer is the schema descriptor for expected_answer field.
	answereventDescExpectedAnswer := answereventFields[4].Descriptor()
	// answerevent.ExpectedAnswerValidator is a validator for the "expected_answer" field. It is called by the builders before save.
	answerevent.ExpectedAnswerValidator = answereventDescExpectedAnswer.Validators[0].(func(string) error)
	// answereventDescItemType is the schema descriptor for item_type field.
	answereventDescItemType := answereventFields[10].Descriptor()
	// answerevent.ItemTypeValidator is a validator for the "item_type" field. It is called by the builders before save.
	answerevent.ItemTypeValidator = answereventDescItemType.Validators[0].(func(string) error)
	// answereventDescRemediation is the schema descriptor for remediation field.
	answereventDescRemediation := answereventFields[11].Descriptor()
	// answerevent.DefaultRemediation holds the default value on creation for the remediation field.
	answerevent.DefaultRemediation = answereventDescRemediation.Default.(bool)
	feedsnapshotFields := schema.FeedSnapshot{}.Fields()
	_ = feedsnapshotFields
	// feedsnapshotDescSessionID is the schema descriptor for session_id field.
	feedsnapshotDescSessionID := feedsnapshotFields[0].Descriptor()
	// feedsnapshot.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	feedsnapshot.SessionIDValidator = feedsnapshotDescSessionID.Validators[0].(func(string) error)
	// feedsnapshotDescTimestamp is the schema descriptor for timestamp field.
	feedsnapshotDescTimestamp := feedsnapshotFields[2].Descriptor()
	// feedsnapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedsnapshot.DefaultTimestamp = feedsnapshotDescTimestamp.Default.(func() time.Time)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSessionID is the schema descriptor for session_id field.
	masteryeventDescSessionID := masteryeventFields[0].Descriptor()
	// masteryevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	masteryevent.SessionIDValidator = masteryeventDescSessionID.Validators[0].(func(string) error)
	// masteryeventDescConceptID is the schema descriptor for concept_id field.
	masteryeventDescConceptID := masteryeventFields[1].Descriptor()
	// masteryevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	masteryevent.ConceptIDValidator = masteryeventDescConceptID.Validators[0].(func(string) error)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescSessionID is the schema descriptor for session_id field.
	rewardeventDescSessionID := rewardeventFields[0].Descriptor()
	// rewardevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	rewardevent.SessionIDValidator = rewardeventDescSessionID.Validators[0].(func(string) error)
	// rewardeventDescConceptID is the schema descriptor for concept_id field.
	rewardeventDescConceptID := rewardeventFields[1].Descriptor()
	// rewardevent.ConceptIDValidator is a validator for the "concept_id" field. It is called by the builders before save.
	rewardevent.ConceptIDValidator = rewardeventDescConceptID.Validators[0].(func(string) error)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescTurns is the schema descriptor for turns field.
	sessioneventDescTurns := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultTurns holds the default value on creation for the turns field.
	sessionevent.DefaultTurns = sessioneventDescTurns.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescXpTotal is the schema descriptor for xp_total field.
	sessioneventDescXpTotal := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultXpTotal holds the default value on creation for the xp_total field.
	sessionevent.DefaultXpTotal = sessioneventDescXpTotal.Default.(int)
	// sessioneventDescBestStreak is the schema descriptor for best_streak field.
	sessioneventDescBestStreak := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultBestStreak holds the default value on creation for the best_streak field.
	sessionevent.DefaultBestStreak = sessioneventDescBestStreak.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
}
