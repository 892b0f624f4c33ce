package repository

import (
	"context"
	"fmt"

	"github.com/dskvich/story-generator/pkg/codec"
	"github.com/dskvich/story-generator/pkg/domain"
	"github.com/uptrace/bun"
)

type promptRepository struct {
	db *bun.DB
}

func NewPromptRepository(db *bun.DB) *promptRepository {
	return &promptRepository{db: db}
}

func (p *promptRepository) Save(ctx context.Context, prompt *domain.Prompt) error {
	_, err := p.db.NewInsert().
		Model(prompt).
		Returning("id").
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("%w: inserting prompt: %w", domain.ErrStorage, err)
	}

	return nil
}

// Each streams stored prompts into sink in insertion order.
func (p *promptRepository) Each(ctx context.Context, sink codec.Sink) error {
	rows, err := p.db.NewSelect().
		Model((*domain.Prompt)(nil)).
		Order("id ASC").
		Rows(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetching prompts: %w", domain.ErrStorage, err)
	}
	defer rows.Close()

	for rows.Next() {
		var prompt domain.Prompt
		if err := p.db.ScanRow(ctx, rows, &prompt); err != nil {
			return fmt.Errorf("%w: scanning prompt: %w", domain.ErrStorage, err)
		}
		sink.Add(&prompt)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: iterating prompts: %w", domain.ErrStorage, err)
	}

	return nil
}

func (p *promptRepository) Close() error {
	return p.db.Close()
}
