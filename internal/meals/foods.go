package meals

import "fitmitra/internal/models"

type slot string

const (
	breakfast slot = "breakfast"
	lunch     slot = "lunch"
	dinner    slot = "dinner"
	snacks    slot = "snacks"
)

type dietTag string

const (
	tagVegetarian    dietTag = "vegetarian"
	tagNonVegetarian dietTag = "non-vegetarian"
	tagVegan         dietTag = "vegan"
	tagEggetarian    dietTag = "eggetarian"
)

// foodDB is the immutable Indian food table, keyed slot x diet tag.
// Macro values are per serving: calories, protein, carbs, fat.
var foodDB = map[slot]map[dietTag][]models.FoodItem{
	breakfast: {
		tagVegetarian: {
			{Name: "Poha", Calories: 250, Protein: 6, Carbs: 45, Fat: 5},
			{Name: "Upma", Calories: 220, Protein: 5, Carbs: 40, Fat: 4},
			{Name: "Idli (3) with Sambar", Calories: 180, Protein: 8, Carbs: 35, Fat: 2},
			{Name: "Dosa with Chutney", Calories: 200, Protein: 6, Carbs: 38, Fat: 3},
			{Name: "Paratha (2) with Curd", Calories: 320, Protein: 10, Carbs: 45, Fat: 12},
			{Name: "Oats Porridge", Calories: 180, Protein: 7, Carbs: 30, Fat: 4},
			{Name: "Vegetable Sandwich", Calories: 240, Protein: 8, Carbs: 35, Fat: 8},
		},
		tagNonVegetarian: {
			{Name: "Egg Bhurji with Roti (2)", Calories: 280, Protein: 18, Carbs: 30, Fat: 10},
			{Name: "Omelette (3 eggs) with Toast", Calories: 320, Protein: 22, Carbs: 25, Fat: 15},
			{Name: "Chicken Sandwich", Calories: 300, Protein: 25, Carbs: 30, Fat: 10},
		},
		tagEggetarian: {
			{Name: "Boiled Eggs (2) with Toast", Calories: 220, Protein: 16, Carbs: 25, Fat: 8},
			{Name: "Egg Dosa", Calories: 250, Protein: 14, Carbs: 30, Fat: 8},
		},
	},
	lunch: {
		tagVegetarian: {
			{Name: "Dal Rice with Sabzi", Calories: 400, Protein: 15, Carbs: 70, Fat: 8},
			{Name: "Rajma Chawal", Calories: 450, Protein: 18, Carbs: 75, Fat: 10},
			{Name: "Chole Bhature", Calories: 550, Protein: 16, Carbs: 85, Fat: 18},
			{Name: "Paneer Butter Masala with Roti (3)", Calories: 480, Protein: 20, Carbs: 55, Fat: 20},
			{Name: "Veg Biryani", Calories: 420, Protein: 12, Carbs: 70, Fat: 12},
			{Name: "Sambar Rice with Papad", Calories: 380, Protein: 12, Carbs: 68, Fat: 8},
			{Name: "Palak Paneer with Roti (3)", Calories: 450, Protein: 22, Carbs: 50, Fat: 18},
		},
		tagNonVegetarian: {
			{Name: "Chicken Curry with Rice", Calories: 520, Protein: 35, Carbs: 60, Fat: 15},
			{Name: "Fish Curry with Rice", Calories: 480, Protein: 32, Carbs: 58, Fat: 12},
			{Name: "Chicken Biryani", Calories: 580, Protein: 30, Carbs: 70, Fat: 18},
			{Name: "Mutton Curry with Roti (3)", Calories: 620, Protein: 38, Carbs: 50, Fat: 28},
			{Name: "Egg Curry with Rice", Calories: 450, Protein: 20, Carbs: 62, Fat: 14},
		},
		tagVegan: {
			{Name: "Chana Masala with Rice", Calories: 420, Protein: 16, Carbs: 72, Fat: 10},
			{Name: "Mixed Veg Curry with Roti (3)", Calories: 380, Protein: 12, Carbs: 65, Fat: 8},
		},
	},
	dinner: {
		tagVegetarian: {
			{Name: "Roti (3) with Dal and Sabzi", Calories: 380, Protein: 14, Carbs: 60, Fat: 10},
			{Name: "Khichdi with Curd", Calories: 320, Protein: 12, Carbs: 55, Fat: 8},
			{Name: "Paneer Tikka with Roti (2)", Calories: 420, Protein: 24, Carbs: 40, Fat: 18},
			{Name: "Vegetable Pulao with Raita", Calories: 360, Protein: 10, Carbs: 62, Fat: 10},
			{Name: "Aloo Gobi with Roti (3)", Calories: 340, Protein: 10, Carbs: 58, Fat: 8},
		},
		tagNonVegetarian: {
			{Name: "Grilled Chicken with Roti (2)", Calories: 420, Protein: 38, Carbs: 35, Fat: 12},
			{Name: "Fish Fry with Salad", Calories: 350, Protein: 32, Carbs: 20, Fat: 16},
			{Name: "Chicken Tandoori with Roti (2)", Calories: 400, Protein: 36, Carbs: 35, Fat: 10},
			{Name: "Egg Curry with Roti (2)", Calories: 380, Protein: 18, Carbs: 42, Fat: 14},
		},
		tagVegan: {
			{Name: "Tofu Curry with Rice", Calories: 380, Protein: 18, Carbs: 58, Fat: 10},
			{Name: "Mixed Dal with Roti (3)", Calories: 340, Protein: 16, Carbs: 60, Fat: 6},
		},
	},
	snacks: {
		tagVegetarian: {
			{Name: "Fruit Chaat", Calories: 120, Protein: 2, Carbs: 28, Fat: 1},
			{Name: "Roasted Chana", Calories: 150, Protein: 8, Carbs: 25, Fat: 3},
			{Name: "Sprouts Salad", Calories: 100, Protein: 7, Carbs: 18, Fat: 1},
			{Name: "Dhokla (2 pieces)", Calories: 140, Protein: 5, Carbs: 24, Fat: 3},
			{Name: "Masala Chai with Biscuits", Calories: 160, Protein: 4, Carbs: 28, Fat: 4},
			{Name: "Banana with Peanut Butter", Calories: 200, Protein: 6, Carbs: 30, Fat: 8},
		},
		tagNonVegetarian: {
			{Name: "Boiled Eggs (2)", Calories: 140, Protein: 12, Carbs: 2, Fat: 10},
			{Name: "Chicken Tikka (4 pieces)", Calories: 180, Protein: 24, Carbs: 4, Fat: 8},
		},
		tagVegan: {
			{Name: "Mixed Nuts (30g)", Calories: 180, Protein: 6, Carbs: 8, Fat: 15},
			{Name: "Hummus with Veggies", Calories: 150, Protein: 6, Carbs: 18, Fat: 6},
		},
	},
}
