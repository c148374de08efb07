// Package catalog holds the static learning content: the unit list, the
// question catalog, and the story catalog. The content ships with the build
// and is read-only; user state lives in the progress document.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ozlemtrn/oynaogren/internal/models"
)

// Unit is a named block of content gated behind completion of the previous
// unit.
type Unit struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

var units = []Unit{
	{Number: 1, Title: "Offer and accept a drink"},
	{Number: 2, Title: "Say where you are from"},
	{Number: 3, Title: "Introduce yourself and your family"},
	{Number: 4, Title: "Find your way at the airport"},
	{Number: 5, Title: "Use adjectives to describe nouns"},
	{Number: 6, Title: "Order food and drinks"},
	{Number: 7, Title: "Use the present tense for jobs"},
}

// Units returns the ordered unit list.
func Units() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	return out
}

// UnitNumbers returns the ordered unit numbers, the shape the lock-state
// evaluator consumes.
func UnitNumbers() []int {
	out := make([]int, len(units))
	for i, u := range units {
		out[i] = u.Number
	}
	return out
}

// Questions returns the full question catalog ordered by numeric ID.
func Questions() []models.Question {
	out := make([]models.Question, len(questions))
	copy(out, questions)
	return out
}

// UnitQuestions returns the catalog entries for one unit, ordered by
// numeric ID, bonus questions included.
func UnitQuestions(unit int) []models.Question {
	var out []models.Question
	for _, q := range questions {
		if q.Unit == unit {
			out = append(out, q)
		}
	}
	SortByNumber(out)
	return out
}

// QuestionByID looks a question up by its catalog ID.
func QuestionByID(id string) (models.Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return models.Question{}, false
}

// QuestionNumber extracts the numeric suffix of a question ID ("q12" -> 12).
// IDs without a parseable suffix sort first.
func QuestionNumber(id string) int {
	n, err := strconv.Atoi(strings.TrimPrefix(id, "q"))
	if err != nil {
		return 0
	}
	return n
}

// SortByNumber orders questions in place by the numeric suffix of their IDs.
func SortByNumber(qs []models.Question) {
	sort.SliceStable(qs, func(i, j int) bool {
		return QuestionNumber(qs[i].ID) < QuestionNumber(qs[j].ID)
	})
}

var questions = []models.Question{
	// Unit 1: offer and accept a drink.
	{
		ID: "q1", Unit: 1, Type: models.QuestionMatching,
		Description: "Match the drinks with their Turkish meanings",
		LeftOptions: []string{"tea", "coffee", "water", "juice"},
		RightOptions: []string{"çay", "kahve", "su", "meyve suyu"},
		CorrectPairs: []models.MatchingPair{
			{Left: "tea", Right: "çay"},
			{Left: "coffee", Right: "kahve"},
			{Left: "water", Right: "su"},
			{Left: "juice", Right: "meyve suyu"},
		},
	},
	{
		ID: "q2", Unit: 1, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "Would you like some tea?",
		CorrectAnswer: "Biraz çay ister misiniz?",
	},
	{
		ID: "q3", Unit: 1, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u1_would_you_like_coffee.mp3",
		CorrectAnswer: "Would you like a coffee?",
	},
	{
		ID: "q4", Unit: 1, Type: models.QuestionImageChoice,
		Description:   "Which picture shows a glass of juice?",
		CorrectAnswer: "juice",
		Images: []models.ImageOption{
			{Label: "juice", Image: "images/u1_juice.png"},
			{Label: "tea", Image: "images/u1_tea.png"},
			{Label: "coffee", Image: "images/u1_coffee.png"},
		},
	},
	{
		ID: "q5", Unit: 1, Type: models.QuestionSpeaking,
		Description:   "Say the sentence out loud",
		Sentence:      "Yes, please. I would love some tea.",
		CorrectAnswer: "yes please i would love some tea",
	},
	{
		ID: "q6", Unit: 1, Type: models.QuestionTranslation, Extra: true,
		Description:   "Bonus: translate the sentence",
		Sentence:      "No, thank you. I am fine.",
		CorrectAnswer: "Hayır, teşekkürler. Ben iyiyim.",
	},
	{
		ID: "q7", Unit: 1, Type: models.QuestionListening, Extra: true,
		Description:   "Bonus: listen and type what you hear",
		AudioFile:     "audio/u1_anything_else.mp3",
		CorrectAnswer: "Would you like anything else?",
	},

	// Unit 2: say where you are from.
	{
		ID: "q8", Unit: 2, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "Where are you from?",
		CorrectAnswer: "Nerelisin?",
	},
	{
		ID: "q9", Unit: 2, Type: models.QuestionMatching,
		Description: "Match the countries with their nationalities",
		LeftOptions: []string{"Turkey", "Italy", "Japan", "Spain"},
		RightOptions: []string{"Turkish", "Italian", "Japanese", "Spanish"},
		CorrectPairs: []models.MatchingPair{
			{Left: "Turkey", Right: "Turkish"},
			{Left: "Italy", Right: "Italian"},
			{Left: "Japan", Right: "Japanese"},
			{Left: "Spain", Right: "Spanish"},
		},
	},
	{
		ID: "q10", Unit: 2, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u2_i_am_from_turkey.mp3",
		CorrectAnswer: "I am from Turkey.",
	},
	{
		ID: "q11", Unit: 2, Type: models.QuestionSpeaking,
		Description:   "Say the sentence out loud",
		Sentence:      "I am from Istanbul. Where are you from?",
		CorrectAnswer: "i am from istanbul where are you from",
	},
	{
		ID: "q12", Unit: 2, Type: models.QuestionImageChoice, Extra: true,
		Description:   "Bonus: which flag belongs to Japan?",
		CorrectAnswer: "japan",
		Images: []models.ImageOption{
			{Label: "japan", Image: "images/u2_flag_japan.png"},
			{Label: "italy", Image: "images/u2_flag_italy.png"},
			{Label: "spain", Image: "images/u2_flag_spain.png"},
		},
	},

	// Unit 3: introduce yourself and your family.
	{
		ID: "q13", Unit: 3, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "This is my older brother.",
		CorrectAnswer: "Bu benim abim.",
	},
	{
		ID: "q14", Unit: 3, Type: models.QuestionMatching,
		Description: "Match the family members",
		LeftOptions: []string{"mother", "father", "sister", "brother"},
		RightOptions: []string{"anne", "baba", "kız kardeş", "erkek kardeş"},
		CorrectPairs: []models.MatchingPair{
			{Left: "mother", Right: "anne"},
			{Left: "father", Right: "baba"},
			{Left: "sister", Right: "kız kardeş"},
			{Left: "brother", Right: "erkek kardeş"},
		},
	},
	{
		ID: "q15", Unit: 3, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u3_my_name_is.mp3",
		CorrectAnswer: "My name is Daniel.",
	},
	{
		ID: "q16", Unit: 3, Type: models.QuestionSpeaking,
		Description:   "Say the sentence out loud",
		Sentence:      "Nice to meet you. This is my family.",
		CorrectAnswer: "nice to meet you this is my family",
	},
	{
		ID: "q17", Unit: 3, Type: models.QuestionTranslation, Extra: true,
		Description:   "Bonus: translate the sentence",
		Sentence:      "My grandmother lives with us.",
		CorrectAnswer: "Büyükannem bizimle yaşıyor.",
	},

	// Unit 4: find your way at the airport.
	{
		ID: "q18", Unit: 4, Type: models.QuestionImageChoice,
		Description:   "Which picture shows the check-in desk?",
		CorrectAnswer: "check-in",
		Images: []models.ImageOption{
			{Label: "check-in", Image: "images/u4_checkin.png"},
			{Label: "gate", Image: "images/u4_gate.png"},
			{Label: "baggage", Image: "images/u4_baggage.png"},
		},
	},
	{
		ID: "q19", Unit: 4, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "Where is gate five?",
		CorrectAnswer: "Beş numaralı kapı nerede?",
	},
	{
		ID: "q20", Unit: 4, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u4_boarding_pass.mp3",
		CorrectAnswer: "May I see your boarding pass?",
	},
	{
		ID: "q21", Unit: 4, Type: models.QuestionSpeaking,
		Description:   "Say the sentence out loud",
		Sentence:      "Excuse me, where is the baggage claim?",
		CorrectAnswer: "excuse me where is the baggage claim",
	},
	{
		ID: "q22", Unit: 4, Type: models.QuestionMatching, Extra: true,
		Description: "Bonus: match the airport words",
		LeftOptions: []string{"passport", "ticket", "luggage"},
		RightOptions: []string{"pasaport", "bilet", "bagaj"},
		CorrectPairs: []models.MatchingPair{
			{Left: "passport", Right: "pasaport"},
			{Left: "ticket", Right: "bilet"},
			{Left: "luggage", Right: "bagaj"},
		},
	},

	// Unit 5: use adjectives to describe nouns.
	{
		ID: "q23", Unit: 5, Type: models.QuestionMatching,
		Description: "Match the adjectives with their opposites",
		LeftOptions: []string{"big", "hot", "fast", "old"},
		RightOptions: []string{"small", "cold", "slow", "new"},
		CorrectPairs: []models.MatchingPair{
			{Left: "big", Right: "small"},
			{Left: "hot", Right: "cold"},
			{Left: "fast", Right: "slow"},
			{Left: "old", Right: "new"},
		},
	},
	{
		ID: "q24", Unit: 5, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "The salad looks fresh and tasty.",
		CorrectAnswer: "Salata taze ve lezzetli görünüyor.",
	},
	{
		ID: "q25", Unit: 5, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u5_delicious.mp3",
		CorrectAnswer: "Everything looks delicious!",
	},
	{
		ID: "q26", Unit: 5, Type: models.QuestionSpeaking, Extra: true,
		Description:   "Bonus: say the sentence out loud",
		Sentence:      "It is a beautiful sunny day.",
		CorrectAnswer: "it is a beautiful sunny day",
	},

	// Unit 6: order food and drinks.
	{
		ID: "q27", Unit: 6, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "I will have the pasta, please.",
		CorrectAnswer: "Makarna alayım, lütfen.",
	},
	{
		ID: "q28", Unit: 6, Type: models.QuestionImageChoice,
		Description:   "Which picture shows a salad?",
		CorrectAnswer: "salad",
		Images: []models.ImageOption{
			{Label: "salad", Image: "images/u6_salad.png"},
			{Label: "pizza", Image: "images/u6_pizza.png"},
			{Label: "soup", Image: "images/u6_soup.png"},
		},
	},
	{
		ID: "q29", Unit: 6, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u6_ready_to_order.mp3",
		CorrectAnswer: "Are you ready to order?",
	},
	{
		ID: "q30", Unit: 6, Type: models.QuestionSpeaking,
		Description:   "Say the sentence out loud",
		Sentence:      "Could we have the bill, please?",
		CorrectAnswer: "could we have the bill please",
	},
	{
		ID: "q31", Unit: 6, Type: models.QuestionTranslation, Extra: true,
		Description:   "Bonus: translate the sentence",
		Sentence:      "The soup is too salty for me.",
		CorrectAnswer: "Çorba benim için çok tuzlu.",
	},

	// Unit 7: use the present tense for jobs.
	{
		ID: "q32", Unit: 7, Type: models.QuestionMatching,
		Description: "Match the jobs",
		LeftOptions: []string{"teacher", "doctor", "driver", "cook"},
		RightOptions: []string{"öğretmen", "doktor", "şoför", "aşçı"},
		CorrectPairs: []models.MatchingPair{
			{Left: "teacher", Right: "öğretmen"},
			{Left: "doctor", Right: "doktor"},
			{Left: "driver", Right: "şoför"},
			{Left: "cook", Right: "aşçı"},
		},
	},
	{
		ID: "q33", Unit: 7, Type: models.QuestionTranslation,
		Description:   "Translate the sentence",
		Sentence:      "She works at a hospital.",
		CorrectAnswer: "O bir hastanede çalışıyor.",
	},
	{
		ID: "q34", Unit: 7, Type: models.QuestionListening,
		Description:   "Listen and type what you hear",
		AudioFile:     "audio/u7_what_do_you_do.mp3",
		CorrectAnswer: "What do you do for a living?",
	},
	{
		ID: "q35", Unit: 7, Type: models.QuestionSpeaking,
		Description:   "Say the sentence out loud",
		Sentence:      "I teach English at a school.",
		CorrectAnswer: "i teach english at a school",
	},
	{
		ID: "q36", Unit: 7, Type: models.QuestionImageChoice, Extra: true,
		Description:   "Bonus: which picture shows a doctor?",
		CorrectAnswer: "doctor",
		Images: []models.ImageOption{
			{Label: "doctor", Image: "images/u7_doctor.png"},
			{Label: "teacher", Image: "images/u7_teacher.png"},
			{Label: "driver", Image: "images/u7_driver.png"},
		},
	},
}
