package gemini

// courseSchema is the JSON structure the model is asked to produce for
// course generation.
type courseSchema struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Difficulty    string         `json:"difficulty"`
	Objectives    []string       `json:"objectives"`
	Modules       []moduleSchema `json:"modules"`
	EstimatedTime int            `json:"estimatedTime"`
}

// moduleSchema is one module within courseSchema.
type moduleSchema struct {
	Title         string `json:"title"`
	Content       string `json:"content"`
	EstimatedTime int    `json:"estimatedTime"`
}

// quizSchema is the JSON structure the model is asked to produce for
// quiz generation.
type quizSchema struct {
	Questions []questionSchema `json:"questions"`
}

// questionSchema is one question within quizSchema.
type questionSchema struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// cardSchema is one flashcard in the model's response. The prompt asks
// for question/answer keys but front/back are accepted too.
type cardSchema struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Front      string `json:"front"`
	Back       string `json:"back"`
	Difficulty int    `json:"difficulty"`
}
