package parbreak

import (
	"context"
	"fmt"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to parbreak.rules .
func tracer() tracing.Trace {
	return tracing.Select("parbreak.rules")
}

// NfaStateFn represents a state in a non-deterministic finite automaton.
// Functions of type NfaStateFn try to match a code unit of a given
// code-unit class. Classes are small integers defined by the breaker
// implementation driving the automaton (see sub-package wordbreak).
//
// NfaStateFn – after matching a code unit – must return another
// NfaStateFn, which will then in turn be called to process the next
// code unit. The process of matching stops as soon as an NfaStateFn
// returns nil.
type NfaStateFn func(*Recognizer, rune, int) NfaStateFn

// A Recognizer represents an automaton to recognize sequences of code
// units. Its main functionality is performed by an embedded NfaStateFn.
// The first NfaStateFn to use is provided with the constructor.
//
// Recognizer's state functions must be careful to increment MatchLen
// with each matched code unit. Failing to do so may result in incorrect
// breaks.
type Recognizer struct {
	Expect    int         // code-unit class to expect; semantics are up to the client
	MatchLen  int         // length of active match
	UserData  interface{} // clients may need to store additional information
	penalties []int       // penalties to return, set in DoAccept()
	nextStep  NfaStateFn  // next step of the automaton
}

// NewRecognizer creates a new Recognizer.
// This is rarely used, as clients rather should call NewPooledRecognizer().
func NewRecognizer(codeUnitClass int, next NfaStateFn) *Recognizer {
	rec := &Recognizer{}
	rec.Expect = codeUnitClass
	rec.nextStep = next
	return rec
}

// Recognizers are short-lived objects. To avoid multiple allocation of
// small objects we will pool them.
type recognizerPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalRecognizerPool *recognizerPool

func init() {
	globalRecognizerPool = &recognizerPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			rec := &Recognizer{}
			return rec, nil
		})
	globalRecognizerPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalRecognizerPool.opool = pool.NewObjectPool(globalRecognizerPool.ctx, factory, config)
}

// NewPooledRecognizer returns a new Recognizer, pre-filled with an expected
// code-unit class and a state function. The Recognizer is pooled for
// efficiency.
func NewPooledRecognizer(cuClass int, stateFn NfaStateFn) *Recognizer {
	o, _ := globalRecognizerPool.opool.BorrowObject(globalRecognizerPool.ctx)
	rec := o.(*Recognizer)
	rec.Expect = cuClass
	rec.nextStep = stateFn
	return rec
}

// Clears the Recognizer and puts it back into the pool.
func (rec *Recognizer) releaseIntoPool() {
	rec.penalties = nil
	rec.Expect = 0
	rec.MatchLen = 0
	rec.UserData = nil
	rec.nextStep = nil
	_ = globalRecognizerPool.opool.ReturnObject(globalRecognizerPool.ctx, rec)
}

// Simple stringer for debugging purposes.
func (rec *Recognizer) String() string {
	if rec == nil {
		return "[nil rule]"
	}
	return fmt.Sprintf("[%d -> done=%v]", rec.Expect, rec.Done())
}

// Unsubscribed signals to a Recognizer that it has been unsubscribed from
// a UnitPublisher; usually after the Recognizer's NfaStateFn has returned
// nil.
//
// Interface UnitSubscriber
func (rec *Recognizer) Unsubscribed() {
	rec.releaseIntoPool()
}

// Done is used by a Recognizer to signal that it is done matching code
// units. If MatchLength() > 0 it has been accepting a sequence of code
// units, otherwise it has aborted the match.
//
// Interface UnitSubscriber
func (rec *Recognizer) Done() bool {
	return rec.nextStep == nil
}

// MatchLength is part of interface UnitSubscriber.
func (rec *Recognizer) MatchLength() int {
	return rec.MatchLen
}

// UnitEvent is part of interface UnitSubscriber.
func (rec *Recognizer) UnitEvent(c rune, codeUnitClass int) []int {
	var penalties []int
	if rec.nextStep != nil {
		rec.nextStep = rec.nextStep(rec, c, codeUnitClass)
	}
	if rec.Done() && rec.MatchLen > 0 { // accepted a match
		penalties = rec.penalties
	}
	return penalties
}

// --- Standard Recognizer Rules ----------------------------------------

// DoAbort returns a state function which signals abort.
func DoAbort(rec *Recognizer) NfaStateFn {
	rec.MatchLen = 0
	return nil
}

// DoAccept returns a state function which signals accept, together with
// break penalties for matched code units (in reverse sequence, i.e.
// penalties[0] applies to the most recently read code unit).
func DoAccept(rec *Recognizer, penalties ...int) NfaStateFn {
	rec.MatchLen++
	rec.penalties = penalties
	tracer().Debugf("ACCEPT with %v", rec.penalties)
	return nil
}

// --- Code-Unit Publishing and Subscription ----------------------------

// A UnitSubscriber is a receiver of code-unit events, i.e. messages to
// process a newly read code unit. If they can match the unit, they will
// expect further units, otherwise they abort. When they are finished,
// either by accepting or rejecting input, they set Done() to true.
// A successful acceptance of input is signalled by Done()==true and
// MatchLength()>0.
type UnitSubscriber interface {
	UnitEvent(c rune, codeUnitClass int) []int // receive a new code unit
	MatchLength() int                          // length of the match up to now
	Done() bool                                // is this subscriber done?
	Unsubscribed()                             // subscriber has been unsubscribed
}

// A UnitPublisher notifies subscribers with code-unit events: a new unit
// has been read and the subscriber – usually a recognizer rule – has to
// react to it.
//
// Breakers are not required to use the UnitPublisher/UnitSubscriber
// pattern, but it is convenient to stick to it. Breakers often rely on
// sets of rules which are tested interleavingly. To relieve breakers from
// managing unit-distribution to all the rules, it may be advantageous to
// hold a UnitPublisher within a breaker and let all rules implement the
// UnitSubscriber interface.
type UnitPublisher interface {
	SubscribeMe(UnitSubscriber) UnitPublisher // subscribe an additional subscriber
	PublishUnitEvent(c rune, codeUnitClass int) (longestDistance int, penalties []int)
	SetPenaltyAggregator(pa PenaltyAggregator) // function to aggregate break penalties
}

// PenaltyAggregator is a function type for methods of penalty-aggregation.
// Aggregates all the break penalties at a break-point to a single penalty
// value at that point.
type PenaltyAggregator func(int, int) int

// AddPenalties is the default function to aggregate break-penalties.
// Simply adds up all penalties at each break position, respectively.
func AddPenalties(total int, p int) int {
	return bounded(total + p)
}

// MaxPenalties is an alternative function to aggregate break-penalties.
// Returns the maximum of all penalties at each break position.
func MaxPenalties(total int, p int) int {
	if total > p {
		return total
	}
	return p
}

// DefaultUnitPublisher is a simple slice-backed implementation of
// interface UnitPublisher.
type DefaultUnitPublisher struct {
	subscribers    []UnitSubscriber
	penaltiesTotal []int
	aggregate      PenaltyAggregator
}

// NewUnitPublisher creates a new DefaultUnitPublisher.
func NewUnitPublisher() *DefaultUnitPublisher {
	pub := &DefaultUnitPublisher{}
	pub.aggregate = AddPenalties
	return pub
}

// SetPenaltyAggregator sets a PenaltyAggregator for a publisher.
//
// Part of interface UnitPublisher.
func (pub *DefaultUnitPublisher) SetPenaltyAggregator(pa PenaltyAggregator) {
	if pa == nil {
		pub.aggregate = AddPenalties
	} else {
		pub.aggregate = pa
	}
}

// SubscribeMe lets a client subscribe to a UnitPublisher.
//
// Part of interface UnitPublisher.
func (pub *DefaultUnitPublisher) SubscribeMe(sub UnitSubscriber) UnitPublisher {
	if pub.aggregate == nil { // we allow uninitialized DefaultUnitPublishers
		pub.aggregate = AddPenalties
	}
	pub.subscribers = append(pub.subscribers, sub)
	return pub
}

// PublishUnitEvent triggers a code-unit event notification to all
// subscribers. Events include the code unit and its class.
//
// Return values are: the longest active match and a slice of penalties,
// with penalties[j] applying to the code unit j positions back from the
// current one. Penalties will be overwritten by the next call to
// PublishUnitEvent(); clients have to make a copy if they want to
// preserve penalty values.
//
// Interface UnitPublisher
func (pub *DefaultUnitPublisher) PublishUnitEvent(c rune, codeUnitClass int) (int, []int) {
	longest := 0
	pub.penaltiesTotal = pub.penaltiesTotal[:0]
	for i := len(pub.subscribers) - 1; i >= 0; i-- {
		sub := pub.subscribers[i]
		penalties := sub.UnitEvent(c, codeUnitClass)
		for j, p := range penalties { // aggregate all penalties
			if j >= len(pub.penaltiesTotal) {
				pub.penaltiesTotal = append(pub.penaltiesTotal, p)
			} else {
				pub.penaltiesTotal[j] = pub.aggregate(pub.penaltiesTotal[j], p)
			}
		}
		if sub.Done() {
			sub.Unsubscribed()
			pub.subscribers = append(pub.subscribers[:i], pub.subscribers[i+1:]...)
		} else if d := sub.MatchLength(); d > longest {
			longest = d
		}
	}
	return longest, pub.penaltiesTotal
}

func bounded(p int) int {
	if p > InfinitePenalty {
		p = InfinitePenalty
	} else if p < InfiniteMerits {
		p = InfiniteMerits
	}
	return p
}
