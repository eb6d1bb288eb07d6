// Package framework detects the storytelling framework of a deck from keyword
// frequencies and suggests one for a given kind of presentation.
package framework

// Stage is one step of a staged framework.
type Stage struct {
	Name     string
	Keywords []string
}

// Framework is a narrative framework made of ordered stages.
type Framework struct {
	Name   string
	Stages []Stage
}

// Pattern is a structural pattern detected from a flat keyword list.
type Pattern struct {
	Name     string
	Keywords []string
}

// Frameworks is the staged catalog, in evaluation order.
var Frameworks = []Framework{
	{
		Name: "AIDA",
		Stages: []Stage{
			{Name: "attention", Keywords: []string{"attention", "découvrez", "imaginez", "regardez", "savez-vous"}},
			{Name: "intérêt", Keywords: []string{"intérêt", "pourquoi", "avantages", "bénéfices"}},
			{Name: "désir", Keywords: []string{"désir", "solution", "résultat", "transformation"}},
			{Name: "action", Keywords: []string{"action", "commencez", "agissez", "contactez", "inscrivez"}},
		},
	},
	{
		Name: "PASS",
		Stages: []Stage{
			{Name: "problème", Keywords: []string{"problème", "défi", "difficulté", "obstacle", "enjeu"}},
			{Name: "agitation", Keywords: []string{"impact", "conséquence", "risque", "coût", "perte"}},
			{Name: "solution", Keywords: []string{"solution", "résoudre", "réponse", "méthode", "approche"}},
			{Name: "situation", Keywords: []string{"résultat", "bénéfice", "amélioration", "gain"}},
		},
	},
	{
		Name: "What/So What/Now What",
		Stages: []Stage{
			{Name: "what", Keywords: []string{"qu'est-ce", "quoi", "contexte", "situation", "état"}},
			{Name: "so_what", Keywords: []string{"pourquoi", "impact", "importance", "signification"}},
			{Name: "now_what", Keywords: []string{"maintenant", "prochaine", "action", "étape", "plan"}},
		},
	},
	{
		Name: "SCQA",
		Stages: []Stage{
			{Name: "situation", Keywords: []string{"contexte", "situation", "actuellement", "aujourd'hui"}},
			{Name: "complication", Keywords: []string{"problème", "cependant", "mais", "défi", "obstacle"}},
			{Name: "question", Keywords: []string{"question", "comment", "pourquoi", "quel"}},
			{Name: "answer", Keywords: []string{"réponse", "solution", "proposition", "recommandation"}},
		},
	},
}

// Patterns is the structural catalog, evaluated after Frameworks.
var Patterns = []Pattern{
	{Name: "Pyramide", Keywords: []string{"synthèse", "recommandation", "raison", "preuve", "argument"}},
	{Name: "MECE", Keywords: []string{"catégorie", "segment", "type", "exclusif", "exhaustif"}},
}
