package model

// All lists every persisted model in dependency order for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&GoalHistoryModel{},
		&MealModel{},
		&ReminderModel{},
		&ChatModel{},
		&ChatMessageModel{},
	}
}
