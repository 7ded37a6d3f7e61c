package report

// DefaultGuidelines is the closing page text used when none is configured.
var DefaultGuidelines = []string{
	"1. Get at least 8 hours of quality sleep every day.",
	"2. Consume 120g of protein per day.",
	"3. Focus on lifting heavier weights progressively.",
	"4. Prioritize muscle hypertrophy by breaking down muscle fibers.",
	"5. Stick to the macro ratio: Protein : Carbs : Fats = 3 : 2 : 2.",
	"6. Weigh yourself once every 3 days and update your coach.",
	"7. Do 40 minutes of brisk walking daily (mandatory).",
	"8. Cheat meal is allowed once every 10 days. Remember, it's a cheat meal, not a cheat day.",
	"9. Remind me on 17.08.19 for your updated diet plan.",
	"10. Stay hydrated, stay consistent, and trust the process!",
	"11. Clients should not share this plan with others as it is customised for each individual.",
}
