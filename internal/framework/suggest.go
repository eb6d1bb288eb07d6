package framework

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/dsfrkit/internal/textutil"
)

// ErrUnknownCategory is returned by Suggest for a category outside the catalog.
var ErrUnknownCategory = errors.New("unknown presentation category")

// UnknownCategoryError carries the rejected category and the valid ones.
type UnknownCategoryError struct {
	Category string
	Valid    []string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown presentation category %q (valid: %s)", e.Category, strings.Join(e.Valid, ", "))
}

func (e *UnknownCategoryError) Is(target error) bool {
	return target == ErrUnknownCategory
}

// Suggestion recommends a framework for a kind of presentation.
type Suggestion struct {
	Category     string   `json:"category"`
	Primary      string   `json:"primary"`
	Reason       string   `json:"reason"`
	Structure    []string `json:"structure"`
	Alternatives []string `json:"alternatives"`
}

var suggestions = map[string]Suggestion{
	"commercial": {
		Primary: "AIDA",
		Reason:  "AIDA est idéal pour les présentations commerciales et la vente de produits/services",
		Structure: []string{
			"Slide 1-2: Capter l'attention avec un fait marquant ou une question",
			"Slide 3-4: Susciter l'intérêt en présentant le contexte et les enjeux",
			"Slide 5-7: Créer le désir en montrant la solution et ses bénéfices",
			"Slide 8-9: Appel à l'action clair avec prochaines étapes",
		},
		Alternatives: []string{"PASS"},
	},
	"problème": {
		Primary: "PASS",
		Reason:  "PASS est parfait pour présenter un problème et sa solution",
		Structure: []string{
			"Slide 1-2: Exposer clairement le problème",
			"Slide 3-4: Agiter en montrant les impacts et conséquences",
			"Slide 5-7: Présenter la solution de manière détaillée",
			"Slide 8-9: Décrire la situation future améliorée",
		},
		Alternatives: []string{"SCQA"},
	},
	"stratégie": {
		Primary: "SCQA",
		Reason:  "SCQA est idéal pour les présentations stratégiques et analytiques",
		Structure: []string{
			"Slide 1-2: Décrire la situation actuelle",
			"Slide 3-4: Identifier les complications et défis",
			"Slide 5: Poser la question clé à résoudre",
			"Slide 6-9: Apporter la réponse avec recommandations",
		},
		Alternatives: []string{"Pyramide"},
	},
	"compte-rendu": {
		Primary: "What/So What/Now What",
		Reason:  "Structure claire pour les comptes-rendus et updates",
		Structure: []string{
			"Slide 1-3: What - Qu'est-ce qui s'est passé / situation actuelle",
			"Slide 4-6: So What - Pourquoi c'est important / impact",
			"Slide 7-9: Now What - Prochaines étapes / plan d'action",
		},
		Alternatives: []string{"SCQA"},
	},
	"conseil": {
		Primary: "Pyramide",
		Reason:  "Structure privilégiée dans le conseil pour argumenter et convaincre",
		Structure: []string{
			"Slide 1: Message clé / recommandation principale",
			"Slide 2-4: Arguments principaux (niveau 1)",
			"Slide 5-8: Preuves et données à l'appui (niveau 2)",
			"Slide 9: Synthèse et prochaines étapes",
		},
		Alternatives: []string{"MECE", "SCQA"},
	},
	"general": {
		Primary: "SCQA",
		Reason:  "Framework polyvalent adapté à la plupart des contextes",
		Structure: []string{
			"Slide 1-2: Situation",
			"Slide 3-4: Complication",
			"Slide 5: Question",
			"Slide 6-9: Answer",
		},
		Alternatives: []string{"What/So What/Now What"},
	},
}

// Categories returns the accepted categories, sorted.
func Categories() []string {
	names := make([]string, 0, len(suggestions))
	for name := range suggestions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the recommendation for category. Matching ignores case and
// accents, so "strategie" selects "stratégie". An empty category means general.
func Suggest(category string) (Suggestion, error) {
	if strings.TrimSpace(category) == "" {
		category = "general"
	}
	want := textutil.Fold(strings.TrimSpace(category))
	for name, s := range suggestions {
		if textutil.Fold(name) == want {
			s.Category = name
			s.Structure = append([]string(nil), s.Structure...)
			s.Alternatives = append([]string(nil), s.Alternatives...)
			return s, nil
		}
	}
	return Suggestion{}, &UnknownCategoryError{Category: category, Valid: Categories()}
}
