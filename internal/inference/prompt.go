package inference

import (
	"strings"
)

const (
	// promptInstruction pins the assistant to the provided survey data and to
	// answering in Spanish.
	promptInstruction = "Eres un asistente de IA que ayuda a analizar datos de encuestas sobre el bienestar de personas mayores. " +
		"Responde a las preguntas basándote ÚNICAMENTE en los datos de la encuesta proporcionados. " +
		"Si la respuesta no se encuentra en los datos, indica que no tienes suficiente información basada en los datos proporcionados. " +
		"Responde en ESPAÑOL."

	dataContextHeader = "Datos de la encuesta:\n"
	noDataLine        = "No hay datos disponibles de la encuesta.\n"
	questionLabel     = "Pregunta del usuario: "

	// maxExcerptRows caps how many data rows go into the prompt, keeping it
	// concise regardless of sheet size.
	maxExcerptRows = 5
)

// BuildDataExcerpt renders the header row plus up to five following data
// rows, each comma-joined in original cell order. Empty rows inside that
// window are skipped and contribute no line. An empty sheet yields the fixed
// placeholder line.
func BuildDataExcerpt(sheetData [][]string) string {
	if len(sheetData) == 0 {
		return noDataLine
	}

	var excerpt strings.Builder
	if len(sheetData[0]) > 0 {
		excerpt.WriteString(strings.Join(sheetData[0], ", "))
		excerpt.WriteByte('\n')
	}

	end := len(sheetData)
	if end > maxExcerptRows+1 {
		end = maxExcerptRows + 1
	}
	for _, row := range sheetData[1:end] {
		if len(row) == 0 {
			continue
		}
		excerpt.WriteString(strings.Join(row, ", "))
		excerpt.WriteByte('\n')
	}
	return excerpt.String()
}

// BuildPrompt composes the full prompt: instruction block, data excerpt, and
// the labeled question line.
func BuildPrompt(question string, sheetData [][]string) string {
	var prompt strings.Builder
	prompt.WriteString(promptInstruction)
	prompt.WriteString("\n\n")
	prompt.WriteString(dataContextHeader)
	prompt.WriteString(BuildDataExcerpt(sheetData))
	prompt.WriteString("\n---\n")
	prompt.WriteString(questionLabel)
	prompt.WriteString(question)
	return prompt.String()
}
