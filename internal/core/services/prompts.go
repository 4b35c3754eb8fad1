package services

import (
	"github.com/eggspert-labs/eggspert-cli/internal/core/ports/driven"
)

// Default prompt templates, used when no PromptStore override is present.
const (
	defaultAnswerPrompt = `You are an expert poultry farming assistant. Answer the question using only the context below. If the context does not contain the answer, say so instead of guessing.

Context:
%s

Question: %s

Answer:`

	defaultGatePrompt = `Decide whether the following question is about poultry farming, poultry health, egg production, or closely related topics. Reply with exactly YES or NO and nothing else.

Question: %s`

	defaultLabPrompt = `You are an expert veterinary specialist with deep knowledge of poultry farming, especially layer birds. Analyze the following veterinary lab report of a layer bird and provide a comprehensive assessment. Focus on identifying health issues, possible diseases, recommended treatment and medication, nutritional deficiencies, and environmental stress factors:

%s`

	defaultDiagnosisPrompt = `Analyze this image and diagnose any poultry disease. Provide possible symptoms and treatments.`

	defaultOCRPrompt = `Transcribe all text visible in this image. Return only the transcribed text, preserving line breaks.`
)

// defaultPrompts maps well-known prompt names to their built-in templates.
var defaultPrompts = map[string]string{
	driven.PromptAnswer:        defaultAnswerPrompt,
	driven.PromptRelevanceGate: defaultGatePrompt,
	driven.PromptLabAnalysis:   defaultLabPrompt,
	driven.PromptDiagnosis:     defaultDiagnosisPrompt,
	driven.PromptOCR:           defaultOCRPrompt,
}

// loadPrompt resolves a prompt template, preferring the store override.
func loadPrompt(store driven.PromptStore, name string) string {
	if store != nil {
		if p, err := store.Load(name); err == nil && p != "" {
			return p
		}
	}
	return defaultPrompts[name]
}
