package catalog

import "github.com/ozlemtrn/oynaogren/internal/models"

var stories = []models.Story{
	{
		ID:    "story1",
		Title: "Lunch with Daniel",
		Steps: []models.StoryStep{
			{Type: models.StoryStepDialog, Speaker: "bee", Text: "Hi! I'm Bea. It's nice to meet you!"},
			{Type: models.StoryStepDialog, Speaker: "daniel", Text: "Hi Bea! I'm Daniel. Nice to meet you too!"},
			{Type: models.StoryStepDialog, Speaker: "bee", Text: "Is this your first time at this restaurant?"},
			{Type: models.StoryStepDialog, Speaker: "daniel", Text: "Yes, it is. Everything looks delicious! What do you want to eat?"},
			{Type: models.StoryStepDialog, Speaker: "bee", Text: "I think I'll have a salad. It looks fresh and tasty."},
			{
				Type: models.StoryStepQuestion, Text: "What does Bea want to eat?",
				Options: []string{"Pizza", "Salad", "Pasta", "Soup"}, CorrectAnswer: "Salad",
			},
			{Type: models.StoryStepDialog, Speaker: "daniel", Text: "Good choice! I might get pasta. I love Italian food."},
			{Type: models.StoryStepDialog, Speaker: "bee", Text: "Me too! By the way, do you play any sports?"},
			{Type: models.StoryStepDialog, Speaker: "daniel", Text: "Yes, I play soccer. I actually have a big game later today!"},
			{
				Type: models.StoryStepQuestion, Text: "Which sport does Daniel play?",
				Options: []string{"Tennis", "Soccer", "Basketball", "Baseball"}, CorrectAnswer: "Soccer",
			},
		},
	},
	{
		ID:    "story2",
		Title: "At the airport",
		Steps: []models.StoryStep{
			{Type: models.StoryStepDialog, Speaker: "lucy", Text: "Excuse me, where is the check-in desk for flight TK 12?"},
			{Type: models.StoryStepDialog, Speaker: "airportStaff", Text: "It's right over there, next to gate five."},
			{Type: models.StoryStepDialog, Speaker: "lucy", Text: "Thank you! Do I need my passport here?"},
			{Type: models.StoryStepDialog, Speaker: "airportStaff", Text: "Yes, please have your passport and ticket ready."},
			{
				Type: models.StoryStepQuestion, Text: "What does Lucy need at the check-in desk?",
				Options: []string{"Her passport and ticket", "Her luggage only", "Nothing", "A boarding pass"},
				CorrectAnswer: "Her passport and ticket",
			},
		},
	},
	{
		ID:    "story3",
		Title: "Meeting the neighbours",
		Steps: []models.StoryStep{
			{Type: models.StoryStepDialog, Speaker: "priti", Text: "Hello! We just moved in next door. I'm Priti and this is Lin."},
			{Type: models.StoryStepDialog, Speaker: "lin", Text: "Hi! Nice to meet you."},
			{Type: models.StoryStepDialog, Speaker: "honey", Text: "Welcome! Where are you from?"},
			{Type: models.StoryStepDialog, Speaker: "priti", Text: "I'm from India, and Lin is from China."},
			{
				Type: models.StoryStepQuestion, Text: "Where is Lin from?",
				Options: []string{"India", "China", "Japan", "Turkey"}, CorrectAnswer: "China",
			},
		},
	},
}

// Stories returns the story catalog.
func Stories() []models.Story {
	out := make([]models.Story, len(stories))
	copy(out, stories)
	return out
}

// StoryByID looks a story up by ID.
func StoryByID(id string) (models.Story, bool) {
	for _, s := range stories {
		if s.ID == id {
			return s, true
		}
	}
	return models.Story{}, false
}
