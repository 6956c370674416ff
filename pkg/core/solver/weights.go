package solver

// Default composite score weights
const (
	// DefaultImbalancePenalty is subtracted per unit of imbalance when
	// everyone has at least one of their choices
	DefaultImbalancePenalty = 1000

	// DefaultChoiceMultiplier scales the choice score when someone is left without a choice
	DefaultChoiceMultiplier = 10

	// DefaultWithoutChoicePenalty is subtracted per person left without any choice.
	// Large enough that a choiceless solution never outranks a fully satisfied one.
	DefaultWithoutChoicePenalty = 1_000_000

	// DefaultChoicelessImbalancePenalty is subtracted per unit of imbalance when
	// someone is left without a choice
	DefaultChoicelessImbalancePenalty = 10
)

// Weights are the constants of the composite score
type Weights struct {
	ImbalancePenalty           int
	ChoiceMultiplier           int
	WithoutChoicePenalty       int
	ChoicelessImbalancePenalty int
}

// DefaultWeights returns the reference composite score weights
func DefaultWeights() Weights {
	return Weights{
		ImbalancePenalty:           DefaultImbalancePenalty,
		ChoiceMultiplier:           DefaultChoiceMultiplier,
		WithoutChoicePenalty:       DefaultWithoutChoicePenalty,
		ChoicelessImbalancePenalty: DefaultChoicelessImbalancePenalty,
	}
}

// IsZero reports whether no weight has been set
func (w Weights) IsZero() bool {
	return w == Weights{}
}
