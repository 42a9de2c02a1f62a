package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smartcash/internal/models"
	"smartcash/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
)

// maxPromptTransactions bounds the prompt so it never grows with the
// full history.
const maxPromptTransactions = 50

type InsightService struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func buildInsightSystemInstruction() string {
	return `Você analisa transações financeiras e responde SOMENTE com um array JSON válido, sem markdown e sem comentários antes ou depois do JSON.

Formato de cada elemento:
[
  {
    "title": "título curto do insight",
    "description": "o que foi observado nos dados",
    "recommendation": "ação concreta sugerida",
    "severity": "low|medium|high"
  }
]

REGRAS:
- Retorne de 1 a 5 insights relevantes.
- Se os dados forem insuficientes, retorne um array vazio: []
- Nunca retorne texto fora do array JSON.`
}

func NewInsightService(cfg *config.GigaChatConfig, logger *zap.Logger) (*InsightService, error) {
	ctx := context.Background()

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SystemInstruction = buildInsightSystemInstruction()
	model.Temperature = 0.3

	return &InsightService{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (s *InsightService) Close() {
	s.client.Close()
}

// GetInsights produces spending insights for the given transactions. It
// never fails past its own boundary: any request or parse problem logs a
// warning and yields an empty list, so callers need no error path.
func (s *InsightService) GetInsights(ctx context.Context, txs []models.Transaction, adminMode bool) []models.AIInsight {
	if len(txs) == 0 {
		return []models.AIInsight{}
	}

	prompt := buildInsightPrompt(txs, adminMode)

	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: prompt},
	}

	resp, err := s.model.Generate(ctx, messages)
	if err != nil {
		s.logger.Warn("Insight generation failed", zap.Error(err))
		return []models.AIInsight{}
	}

	if len(resp.Choices) == 0 {
		s.logger.Warn("Insight generation returned no choices")
		return []models.AIInsight{}
	}

	insights, err := parseInsights(resp.Choices[0].Message.Content)
	if err != nil {
		s.logger.Warn("Failed to parse insight response", zap.Error(err))
		return []models.AIInsight{}
	}

	s.logger.Info("Insights generated", zap.Int("count", len(insights)))
	return insights
}

// buildInsightPrompt serializes a bounded slice of the list into one line
// per transaction plus the analysis persona for the requesting mode.
func buildInsightPrompt(txs []models.Transaction, adminMode bool) string {
	persona := "Você é um consultor financeiro pessoal. Analise os gastos e dê dicas de economia."
	if adminMode {
		persona = "Você é um auditor financeiro master. Analise os gastos de múltiplos usuários da plataforma e identifique tendências globais, categorias com maior inflação de gastos e possíveis anomalias."
	}

	bounded := txs
	if len(bounded) > maxPromptTransactions {
		bounded = bounded[:maxPromptTransactions]
	}

	var lines strings.Builder
	for _, tx := range bounded {
		email := tx.UserEmail
		if email == "" {
			email = AnonymousUser
		}
		fmt.Fprintf(&lines, "%s em %s: %s - R$ %.2f (%s)\n",
			email, tx.Date, tx.Description, tx.Amount, tx.Category)
	}

	return fmt.Sprintf("%s\n\nAnalise estes dados:\n%s", persona, lines.String())
}

// parseInsights extracts the JSON array from the model output, tolerating
// markdown fences and surrounding prose.
func parseInsights(content string) ([]models.AIInsight, error) {
	content = strings.TrimSpace(content)

	jsonStart := strings.Index(content, "[")
	jsonEnd := strings.LastIndex(content, "]")
	if jsonStart == -1 || jsonEnd == -1 || jsonEnd < jsonStart {
		return nil, fmt.Errorf("no JSON array in response: %s", content)
	}

	jsonStr := content[jsonStart : jsonEnd+1]

	var insights []models.AIInsight
	if err := json.Unmarshal([]byte(jsonStr), &insights); err != nil {
		jsonStr = strings.TrimSpace(jsonStr)
		jsonStr = strings.TrimPrefix(jsonStr, "```json")
		jsonStr = strings.TrimPrefix(jsonStr, "```")
		jsonStr = strings.TrimSuffix(jsonStr, "```")
		jsonStr = strings.TrimSpace(jsonStr)

		if err := json.Unmarshal([]byte(jsonStr), &insights); err != nil {
			return nil, fmt.Errorf("failed to parse JSON response: %w", err)
		}
	}

	for i := range insights {
		switch insights[i].Severity {
		case models.SeverityLow, models.SeverityMedium, models.SeverityHigh:
		default:
			insights[i].Severity = models.SeverityLow
		}
	}

	if insights == nil {
		insights = []models.AIInsight{}
	}
	return insights, nil
}
