package hybrid

import (
	"errors"
	"math"
	"testing"

	"github.com/Aniket-hybrid/Predictor/models"
)

func TestCombineReference(t *testing.T) {
	// 0.6*0.3 + 0.8*0.7 + 0.2 = 0.94
	prediction, err := Combine(models.CombineRequest{
		AstroConfidence:    0.6,
		BehaviorConfidence: 0.8,
		Agreement:          models.AgreementAgree,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if math.Abs(prediction.Combined-0.94) > 1e-9 {
		t.Errorf("Combined = %f, ожидалось 0.94", prediction.Combined)
	}
	if prediction.Tier != models.TierVeryHighOpportunity {
		t.Errorf("тир = %s, ожидалось VERY_HIGH_OPPORTUNITY", prediction.Tier)
	}
}

func TestCombineAgreementBonus(t *testing.T) {
	tests := []struct {
		name      string
		agreement models.Agreement
		expected  float64
	}{
		{"Согласие добавляет бонус", models.AgreementAgree, 0.7},
		{"Конфликт дает штраф", models.AgreementConflict, 0.4},
		{"Неопределенность нейтральна", models.AgreementIndeterminate, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction, err := Combine(models.CombineRequest{
				AstroConfidence:    0.5,
				BehaviorConfidence: 0.5,
				Agreement:          tt.agreement,
			})
			if err != nil {
				t.Fatalf("неожиданная ошибка: %v", err)
			}
			if math.Abs(prediction.Combined-tt.expected) > 1e-9 {
				t.Errorf("Combined = %f, ожидалось %f", prediction.Combined, tt.expected)
			}
		})
	}
}

func TestCombineClamped(t *testing.T) {
	prediction, err := Combine(models.CombineRequest{
		AstroConfidence:    1,
		BehaviorConfidence: 1,
		Agreement:          models.AgreementAgree,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if prediction.Combined != 1 {
		t.Errorf("Combined = %f, ожидалось ровно 1", prediction.Combined)
	}

	prediction, err = Combine(models.CombineRequest{
		AstroConfidence:    0,
		BehaviorConfidence: 0,
		Agreement:          models.AgreementConflict,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if prediction.Combined != 0 {
		t.Errorf("Combined = %f, ожидалось ровно 0", prediction.Combined)
	}
}

func TestCombineTiers(t *testing.T) {
	tests := []struct {
		name     string
		behavior float64
		expected string
	}{
		{"Высокая уверенность", 1.0, models.TierVeryHighOpportunity},
		{"Средняя уверенность", 0.6, models.TierModerate},
		{"Низкая уверенность", 0.1, models.TierCaution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prediction, err := Combine(models.CombineRequest{
				AstroConfidence:    0.1,
				BehaviorConfidence: tt.behavior,
				Agreement:          models.AgreementIndeterminate,
			})
			if err != nil {
				t.Fatalf("неожиданная ошибка: %v", err)
			}
			if prediction.Tier != tt.expected {
				t.Errorf("тир = %s, ожидалось %s", prediction.Tier, tt.expected)
			}
		})
	}
}

func TestCombineMonotonic(t *testing.T) {
	// Рост любой из сторон не должен снижать итоговую уверенность
	previous := -1.0
	for behavior := 0.0; behavior <= 1.0; behavior += 0.1 {
		prediction, err := Combine(models.CombineRequest{
			AstroConfidence:    0.5,
			BehaviorConfidence: behavior,
			Agreement:          models.AgreementIndeterminate,
		})
		if err != nil {
			t.Fatalf("неожиданная ошибка: %v", err)
		}
		if prediction.Combined < previous {
			t.Errorf("Combined упал с %f до %f при росте behavior", previous, prediction.Combined)
		}
		previous = prediction.Combined
	}
}

func TestCombineCustomWeights(t *testing.T) {
	weights := models.HybridWeights{
		Astrology:       0.5,
		Behavior:        0.5,
		AgreeBonus:      0.1,
		ConflictPenalty: 0.05,
	}
	prediction, err := Combine(models.CombineRequest{
		AstroConfidence:    0.4,
		BehaviorConfidence: 0.8,
		Agreement:          models.AgreementAgree,
		Weights:            &weights,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	// 0.4*0.5 + 0.8*0.5 + 0.1 = 0.7
	if math.Abs(prediction.Combined-0.7) > 1e-9 {
		t.Errorf("Combined = %f, ожидалось 0.7", prediction.Combined)
	}
}

func TestCombineValidation(t *testing.T) {
	tests := []struct {
		name string
		req  models.CombineRequest
	}{
		{
			name: "Уверенность вне диапазона",
			req: models.CombineRequest{
				AstroConfidence:    1.5,
				BehaviorConfidence: 0.5,
				Agreement:          models.AgreementAgree,
			},
		},
		{
			name: "Отрицательная уверенность",
			req: models.CombineRequest{
				AstroConfidence:    0.5,
				BehaviorConfidence: -0.1,
				Agreement:          models.AgreementAgree,
			},
		},
		{
			name: "Неизвестный сигнал согласия",
			req: models.CombineRequest{
				AstroConfidence:    0.5,
				BehaviorConfidence: 0.5,
				Agreement:          models.Agreement("maybe"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Combine(tt.req)
			var invalid *models.InvalidInputError
			if !errors.As(err, &invalid) {
				t.Errorf("ожидалась InvalidInputError, получено %v", err)
			}
		})
	}
}

func TestMergeActions(t *testing.T) {
	astro := []models.ActionItem{
		{Text: "Wear red coral", Source: "ASTROLOGY", Priority: 2},
		{Text: "Perform Nag Puja", Source: "ASTROLOGY", Priority: 2},
	}
	behavior := []models.ActionItem{
		{Text: "Prioritize sleep", Source: "BEHAVIOR", Priority: 1},
		{Text: "Wear red coral", Source: "BEHAVIOR", Priority: 3}, // дубликат текста
	}

	prediction, err := Combine(models.CombineRequest{
		AstroConfidence:    0.5,
		BehaviorConfidence: 0.5,
		Agreement:          models.AgreementIndeterminate,
		AstroActions:       astro,
		BehaviorActions:    behavior,
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}

	if len(prediction.ActionItems) != 3 {
		t.Fatalf("ожидалось 3 пункта после дедупликации, получено %d", len(prediction.ActionItems))
	}
	// Сортировка: приоритет, затем источник, затем текст
	if prediction.ActionItems[0].Text != "Prioritize sleep" {
		t.Errorf("первым должен идти пункт с приоритетом 1: %q", prediction.ActionItems[0].Text)
	}
	for i := 1; i < len(prediction.ActionItems); i++ {
		if prediction.ActionItems[i].Priority < prediction.ActionItems[i-1].Priority {
			t.Errorf("нарушен порядок приоритетов на позиции %d", i)
		}
	}
}
