package workout

import "fitmitra/internal/models"

type location string

const (
	home location = "home"
	gym  location = "gym"
)

type category string

const (
	strength category = "strength"
	cardio   category = "cardio"
)

// exercisesDB is the immutable lookup table, keyed
// location x category x experience level.
var exercisesDB = map[location]map[category]map[models.ExperienceLevel][]models.Exercise{
	home: {
		strength: {
			models.Beginner: {
				{Name: "Push-ups", Sets: 3, Reps: "8-12", Rest: "60s"},
				{Name: "Bodyweight Squats", Sets: 3, Reps: "12-15", Rest: "60s"},
				{Name: "Plank", Sets: 3, Reps: "30-45s", Rest: "45s"},
				{Name: "Lunges", Sets: 3, Reps: "10 each leg", Rest: "60s"},
				{Name: "Glute Bridges", Sets: 3, Reps: "12-15", Rest: "45s"},
				{Name: "Wall Sit", Sets: 3, Reps: "30-45s", Rest: "60s"},
				{Name: "Mountain Climbers", Sets: 3, Reps: "20", Rest: "45s"},
				{Name: "Tricep Dips (chair)", Sets: 3, Reps: "8-12", Rest: "60s"},
			},
			models.Intermediate: {
				{Name: "Diamond Push-ups", Sets: 4, Reps: "10-15", Rest: "60s"},
				{Name: "Jump Squats", Sets: 4, Reps: "12-15", Rest: "60s"},
				{Name: "Side Plank", Sets: 3, Reps: "45s each", Rest: "45s"},
				{Name: "Bulgarian Split Squats", Sets: 3, Reps: "12 each", Rest: "60s"},
				{Name: "Pike Push-ups", Sets: 3, Reps: "10-12", Rest: "60s"},
				{Name: "Single Leg Deadlift", Sets: 3, Reps: "10 each", Rest: "60s"},
				{Name: "Burpees", Sets: 4, Reps: "10-12", Rest: "60s"},
			},
			models.Advanced: {
				{Name: "One-Arm Push-ups", Sets: 4, Reps: "6-8 each", Rest: "90s"},
				{Name: "Pistol Squats", Sets: 4, Reps: "8-10 each", Rest: "90s"},
				{Name: "Handstand Push-ups", Sets: 3, Reps: "5-8", Rest: "120s"},
				{Name: "Archer Push-ups", Sets: 4, Reps: "8-10 each", Rest: "90s"},
				{Name: "Dragon Flags", Sets: 3, Reps: "6-8", Rest: "120s"},
			},
		},
		cardio: {
			models.Beginner: {
				{Name: "Jumping Jacks", Sets: 3, Reps: "30s", Rest: "30s"},
				{Name: "High Knees", Sets: 3, Reps: "30s", Rest: "30s"},
				{Name: "Butt Kicks", Sets: 3, Reps: "30s", Rest: "30s"},
				{Name: "Step-ups", Sets: 3, Reps: "45s", Rest: "45s"},
			},
			models.Intermediate: {
				{Name: "Burpees", Sets: 4, Reps: "45s", Rest: "30s"},
				{Name: "Mountain Climbers", Sets: 4, Reps: "45s", Rest: "30s"},
				{Name: "Jump Rope", Sets: 4, Reps: "60s", Rest: "30s"},
				{Name: "Box Jumps", Sets: 3, Reps: "12-15", Rest: "60s"},
			},
			models.Advanced: {
				{Name: "Burpee Box Jumps", Sets: 4, Reps: "60s", Rest: "30s"},
				{Name: "Sprint Intervals", Sets: 6, Reps: "30s sprint", Rest: "30s"},
				{Name: "Plyometric Push-ups", Sets: 4, Reps: "10-12", Rest: "60s"},
			},
		},
	},
	gym: {
		strength: {
			models.Beginner: {
				{Name: "Barbell Bench Press", Sets: 3, Reps: "8-12", Rest: "90s"},
				{Name: "Lat Pulldown", Sets: 3, Reps: "10-12", Rest: "60s"},
				{Name: "Leg Press", Sets: 3, Reps: "12-15", Rest: "90s"},
				{Name: "Dumbbell Shoulder Press", Sets: 3, Reps: "10-12", Rest: "60s"},
				{Name: "Cable Rows", Sets: 3, Reps: "10-12", Rest: "60s"},
				{Name: "Leg Curl", Sets: 3, Reps: "12-15", Rest: "60s"},
			},
			models.Intermediate: {
				{Name: "Barbell Squat", Sets: 4, Reps: "8-10", Rest: "120s"},
				{Name: "Deadlift", Sets: 4, Reps: "6-8", Rest: "120s"},
				{Name: "Incline Dumbbell Press", Sets: 4, Reps: "8-12", Rest: "90s"},
				{Name: "Pull-ups", Sets: 4, Reps: "8-12", Rest: "90s"},
				{Name: "Romanian Deadlift", Sets: 3, Reps: "10-12", Rest: "90s"},
				{Name: "Barbell Rows", Sets: 4, Reps: "8-10", Rest: "90s"},
			},
			models.Advanced: {
				{Name: "Back Squat (Heavy)", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Deadlift (Heavy)", Sets: 5, Reps: "5", Rest: "180s"},
				{Name: "Weighted Pull-ups", Sets: 4, Reps: "6-8", Rest: "120s"},
				{Name: "Front Squat", Sets: 4, Reps: "6-8", Rest: "120s"},
				{Name: "Overhead Press", Sets: 4, Reps: "6-8", Rest: "120s"},
			},
		},
		cardio: {
			models.Beginner: {
				{Name: "Treadmill Walk/Jog", Sets: 1, Reps: "20 min", Rest: "0s"},
				{Name: "Stationary Bike", Sets: 1, Reps: "15 min", Rest: "0s"},
				{Name: "Elliptical", Sets: 1, Reps: "15 min", Rest: "0s"},
			},
			models.Intermediate: {
				{Name: "Treadmill HIIT", Sets: 8, Reps: "1 min sprint/1 min walk", Rest: "0s"},
				{Name: "Rowing Machine", Sets: 1, Reps: "20 min", Rest: "0s"},
				{Name: "Stair Climber", Sets: 1, Reps: "15 min", Rest: "0s"},
			},
			models.Advanced: {
				{Name: "Sprint Intervals", Sets: 10, Reps: "30s sprint/30s rest", Rest: "0s"},
				{Name: "Assault Bike", Sets: 1, Reps: "20 min", Rest: "0s"},
				{Name: "Rowing HIIT", Sets: 8, Reps: "500m sprint", Rest: "60s"},
			},
		},
	},
}

var warmupRoutine = []models.RoutineItem{
	{Name: "Arm Circles", Duration: "30s"},
	{Name: "Leg Swings", Duration: "30s each leg"},
	{Name: "Torso Twists", Duration: "30s"},
	{Name: "Light Cardio (Jog in place)", Duration: "2 min"},
}

var cooldownRoutine = []models.RoutineItem{
	{Name: "Walking", Duration: "3 min"},
	{Name: "Hamstring Stretch", Duration: "30s each leg"},
	{Name: "Quad Stretch", Duration: "30s each leg"},
	{Name: "Shoulder Stretch", Duration: "30s each arm"},
	{Name: "Deep Breathing", Duration: "1 min"},
}
