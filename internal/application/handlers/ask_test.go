package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/datask-core/internal/domain/entities"
	"github.com/ersonp/datask-core/internal/domain/mocks"
	"github.com/ersonp/datask-core/internal/domain/ports"
	"github.com/ersonp/datask-core/internal/domain/services"
)

func newAskHandler(llm *mocks.LLMClient, db *mocks.StorageDB) *AskHandler {
	catalog := entities.DefaultCatalog()
	router := services.NewRouter(llm, services.NewGuard(catalog), services.NewResolver(db), catalog)
	return NewAskHandler(router, db)
}

func TestAskHandle_ExecutesAcceptedStatement(t *testing.T) {
	db := &mocks.StorageDB{
		Result: &entities.ResultSet{
			Columns: []string{"Label"},
			Rows:    [][]string{{"A-01"}, {"A-02"}},
		},
	}
	llm := &mocks.LLMClient{
		Decision: &ports.Decision{
			Kind: ports.DecisionSQL,
			SQL:  "SELECT Label FROM Seat ORDER BY Label",
		},
	}
	handler := newAskHandler(llm, db)

	res := handler.Handle(context.Background(), "席の一覧は？")

	require.Equal(t, entities.OutcomeSQL, res.Outcome.Kind)
	require.NotNil(t, res.Table)
	assert.Equal(t, [][]string{{"A-01"}, {"A-02"}}, res.Table.Rows)
	assert.Equal(t, []string{"SELECT Label FROM Seat ORDER BY Label"}, db.Executed)
}

func TestAskHandle_RejectedStatementNeverExecutes(t *testing.T) {
	db := &mocks.StorageDB{}
	llm := &mocks.LLMClient{
		Decision: &ports.Decision{
			Kind: ports.DecisionSQL,
			SQL:  "DROP TABLE SeatLog",
		},
	}
	handler := newAskHandler(llm, db)

	res := handler.Handle(context.Background(), "ログを消して")

	assert.Equal(t, entities.OutcomeError, res.Outcome.Kind)
	assert.Nil(t, res.Table)
	// The guard rejected the statement, so storage saw nothing.
	assert.Empty(t, db.Executed)
}

func TestAskHandle_NonSQLOutcomesSkipStorage(t *testing.T) {
	db := &mocks.StorageDB{}
	llm := &mocks.LLMClient{
		Decision: &ports.Decision{Kind: ports.DecisionSeatmap},
	}
	handler := newAskHandler(llm, db)

	res := handler.Handle(context.Background(), "現在空いている席は？")

	assert.Equal(t, entities.OutcomeSeatmap, res.Outcome.Kind)
	assert.Nil(t, res.Table)
	assert.Empty(t, db.Executed)
}

func TestAskHandle_ExecutionFailure(t *testing.T) {
	db := &mocks.StorageDB{QueryErr: errors.New("syntax error near FROM")}
	llm := &mocks.LLMClient{
		Decision: &ports.Decision{
			Kind: ports.DecisionSQL,
			SQL:  "SELECT Label FROM Seat",
		},
	}
	handler := newAskHandler(llm, db)

	res := handler.Handle(context.Background(), "席の一覧は？")

	assert.Equal(t, entities.OutcomeError, res.Outcome.Kind)
	assert.Contains(t, res.Outcome.Reason, "syntax error")
	// One attempt, no retry.
	assert.Len(t, db.Executed, 1)
}
