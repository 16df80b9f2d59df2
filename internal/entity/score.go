package entity

// Score is the running tally of finished games against the agent.
type Score struct {
	HumanWins int `json:"human_wins"`
	AgentWins int `json:"agent_wins"`
	Draws     int `json:"draws"`
}
