// Package committer collects Spanner mutations into a plan and applies them.
//
// Repositories return mutations instead of writing them. A caller gathers
// them into a CommitPlan and hands the plan to a Committer, which applies
// it in one or more atomic batches.
//
//	plan := committer.NewPlan()
//	plan.Add(model.DeleteAllMut())
//	plan.AddMultiple(rows)
//	err := committer.NewCommitter(client).ApplyInBatches(ctx, plan, committer.DefaultBatchSize)
package committer

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
)

// DefaultBatchSize keeps a batch well under Spanner's per-commit mutation limit
// for rows of about twenty columns.
const DefaultBatchSize = 2000

// CommitPlan is a typed wrapper around an ordered list of Spanner mutations.
type CommitPlan struct {
	mutations []*spanner.Mutation
}

// NewPlan creates a new empty CommitPlan.
func NewPlan() *CommitPlan {
	return &CommitPlan{
		mutations: make([]*spanner.Mutation, 0),
	}
}

// Add adds a mutation to the plan.
// Nil mutations are silently ignored for convenience.
func (cp *CommitPlan) Add(mut *spanner.Mutation) {
	if mut != nil {
		cp.mutations = append(cp.mutations, mut)
	}
}

// AddMultiple adds multiple mutations to the plan.
func (cp *CommitPlan) AddMultiple(muts []*spanner.Mutation) {
	for _, mut := range muts {
		cp.Add(mut)
	}
}

// Mutations returns all collected mutations.
func (cp *CommitPlan) Mutations() []*spanner.Mutation {
	return cp.mutations
}

// IsEmpty returns true if the plan has no mutations.
func (cp *CommitPlan) IsEmpty() bool {
	return len(cp.mutations) == 0
}

// Count returns the number of mutations in the plan.
func (cp *CommitPlan) Count() int {
	return len(cp.mutations)
}

// Batches splits the plan into consecutive groups of at most size mutations.
// Order is preserved. A non-positive size yields a single batch.
func (cp *CommitPlan) Batches(size int) [][]*spanner.Mutation {
	if cp.IsEmpty() {
		return nil
	}
	if size <= 0 || size >= len(cp.mutations) {
		return [][]*spanner.Mutation{cp.mutations}
	}

	batches := make([][]*spanner.Mutation, 0, (len(cp.mutations)+size-1)/size)
	for start := 0; start < len(cp.mutations); start += size {
		end := min(start+size, len(cp.mutations))
		batches = append(batches, cp.mutations[start:end:end])
	}
	return batches
}

// Committer provides transaction execution for CommitPlans.
type Committer struct {
	client *spanner.Client
}

// NewCommitter creates a new Committer.
func NewCommitter(client *spanner.Client) *Committer {
	return &Committer{client: client}
}

// Apply executes the CommitPlan atomically in a single commit.
func (c *Committer) Apply(ctx context.Context, plan *CommitPlan) error {
	if plan.IsEmpty() {
		return nil
	}

	if _, err := c.client.Apply(ctx, plan.Mutations()); err != nil {
		return fmt.Errorf("failed to apply commit plan: %w", err)
	}
	return nil
}

// ApplyInBatches applies the plan as consecutive commits of at most size
// mutations. Each batch is atomic; the plan as a whole is not. On failure
// the error names the first batch that did not commit.
func (c *Committer) ApplyInBatches(ctx context.Context, plan *CommitPlan, size int) error {
	batches := plan.Batches(size)
	for i, batch := range batches {
		if _, err := c.client.Apply(ctx, batch); err != nil {
			return fmt.Errorf("failed to apply batch %d/%d: %w", i+1, len(batches), err)
		}
	}
	return nil
}
