package models

import "github.com/google/uuid"

// SampleRecipes returns the recipes shipped with the app. They are the
// catalog until something has been saved. Each call mints fresh IDs.
func SampleRecipes() []Recipe {
	recipes := []Recipe{
		{
			MainInformation: MainInformation{
				Name:        "Chicken Feta Meatballs",
				Description: "with delicious Lemon Orzo & Spinach",
				Author:      "Scotty",
				Category:    CategoryDinner,
			},
			Ingredients: []Ingredient{
				{Name: "Ground Chicken", Quantity: 1, Unit: UnitPounds},
				{Name: "Panko Breadcrumbs", Quantity: 0.5, Unit: UnitCups},
				{Name: "Feta Crumbles", Quantity: 0.5, Unit: UnitCups},
				{Name: "Parsley", Quantity: 0.5, Unit: UnitCups},
				{Name: "Olive Oil", Quantity: 1, Unit: UnitTablespoons},
				{Name: "Garlic Clove", Quantity: 5, Unit: UnitNone},
				{Name: "Shallot", Quantity: 1, Unit: UnitNone},
				{Name: "Lemon", Quantity: 1, Unit: UnitNone},
				{Name: "Butter", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Orzo", Quantity: 2, Unit: UnitCups},
				{Name: "White Wine", Quantity: 0.5, Unit: UnitCups},
				{Name: "Chicken Broth", Quantity: 2.5, Unit: UnitCups},
				{Name: "Heavy Cream", Quantity: 0.5, Unit: UnitCups},
				{Name: "Spinach", Quantity: 2.5, Unit: UnitCups},
				{Name: "Salt & Pepper", Quantity: 1, Unit: UnitTeaspoons},
			},
			Directions: []Direction{
				{Description: "Preheat the oven to 425F."},
				{Description: "Mince the garlic and finely chop the shallot. Slice up the lemon."},
				{Description: "In a bowl, mix the ground chicken (or turkey) with the breadcrumbs, feta cheese (or goat's cheese crumbles), and parsley. Season with salt and pepper, mix well and shape into medium-sized meatballs."},
				{Description: "Heat up the olive oil in a cast iron skillet and cook the meatballs on medium heat until browned on all sides (they cook quickly so turn often until no pink)."},
				{Description: "Remove meatballs to a plate, then cook the garlic and shallot for 2 minutes until fragrant. Add the lemon slices and cook for another 1-2 minutes."},
				{Description: "Add the butter and stir constantly until melted. Add the orzo, season with salt and pepper and toast for 2 minutes only. Add the white wine and stir until mostly absorbed."},
				{Description: "Add the chicken broth, heavy cream, and chopped spinach. Mix with tongs until the spinach is wilted."},
				{Description: "Place the meatballs back into the skillet and cover with liquid. Bake for 25 minutes until the liquids have absorbed and the orzo is cooked."},
				{Description: "substitute: goat's cheese crumbles for feta / ground turkey instead of chicken.", IsOptional: true},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Beet and Apple Salad",
				Description: "Light and refreshing summer salad made of beets, apples and fresh mint",
				Author:      "Deb Szajngarten",
				Category:    CategoryLunch,
			},
			Ingredients: []Ingredient{
				{Name: "Large beet", Quantity: 3, Unit: UnitNone},
				{Name: "Large apple", Quantity: 2, Unit: UnitNone},
				{Name: "Lemon zest", Quantity: 0.5, Unit: UnitTablespoons},
				{Name: "Lemon juice", Quantity: 1.5, Unit: UnitTablespoons},
				{Name: "Olive Oil", Quantity: 1, Unit: UnitTeaspoons},
				{Name: "Salt", Quantity: 1, Unit: UnitTeaspoons},
				{Name: "Pepper", Quantity: 1, Unit: UnitTeaspoons},
			},
			Directions: []Direction{
				{Description: "Add beets to food safe plastic storage bags with apples, a teaspoon of course salt and a teaspoon of ground black pepper"},
				{Description: "Vacuum seal the bag of beets and submerge into 185F water until tender; if no vacuum seal, weigh them down so they submerge"},
				{Description: "Once cooked, the skins will come off quite easily (gloves are preferred)"},
				{Description: "Wait until cooled completely, then cut beets into a medium dice"},
				{Description: "Peel and medium dice the apples"},
				{Description: "Chiffonade the mint"},
				{Description: "Combine all ingredients with lemon juice and olive oil and serve"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Braised Beef Brisket",
				Description: "Slow cooked brisket in a savory braise that makes an amazing gravy.",
				Author:      "Deb Szajngarten",
				Category:    CategoryDinner,
			},
			Ingredients: []Ingredient{
				{Name: "Brisket", Quantity: 1815, Unit: UnitGrams},
				{Name: "Large Red Onion", Quantity: 1, Unit: UnitNone},
				{Name: "Minced garlic clove", Quantity: 6, Unit: UnitNone},
				{Name: "Large Carrot", Quantity: 1, Unit: UnitNone},
				{Name: "Parsnip", Quantity: 1, Unit: UnitNone},
				{Name: "Celery Stalk", Quantity: 3, Unit: UnitNone},
				{Name: "Caul, Duck, or Chicken Fat", Quantity: 3, Unit: UnitTablespoons},
				{Name: "Bay Leaf", Quantity: 1, Unit: UnitNone},
				{Name: "Apple Cider Vinegar", Quantity: 0.3, Unit: UnitCups},
				{Name: "Red Wine", Quantity: 1, Unit: UnitCups},
				{Name: "Small Can of Tomato Paste", Quantity: 1, Unit: UnitNone},
				{Name: "Spoonful of Honey", Quantity: 1, Unit: UnitNone},
				{Name: "Chicken Stock", Quantity: 30, Unit: UnitOunces},
			},
			Directions: []Direction{
				{Description: "In a small bowl, combine the honey, tomato paste and wine, and mix into paste"},
				{Description: "In an oval dutch oven, melt the fat over a medium to high heat."},
				{Description: "Sear the brisket on both side then remove the heat"},
				{Description: "Add a bit more fat or vegetable oil and sear the vegetables until the onions become translucent"},
				{Description: "Add the wine mixture, return the beef to the pot, add the chicken stock until it come 1/2 way up the beef"},
				{Description: "Close the lid and bake at 250 until fork tender (4-6 hrs)"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Best Brownies Ever",
				Description: "Five simple ingredients make these brownies easy to make and delicious to consume!",
				Author:      "Pam Broda",
				Category:    CategoryDessert,
			},
			Ingredients: []Ingredient{
				{Name: "Condensed Milk", Quantity: 14, Unit: UnitOunces},
				{Name: "Crushed Graham Crackers", Quantity: 2.5, Unit: UnitCups},
				{Name: "Semi-Sweet Chocolate Chips", Quantity: 12, Unit: UnitOunces},
				{Name: "Vanilla Extract", Quantity: 1, Unit: UnitTeaspoons},
				{Name: "Milk", Quantity: 2, Unit: UnitTablespoons},
			},
			Directions: []Direction{
				{Description: "Preheat oven to 350 degrees F"},
				{Description: "Crush graham cracker in large mixing bowl with clean hands, not in food processor! (Make sure pieces are chunky)"},
				{Description: "Semi-melt the chocolate chips, keep some intact"},
				{Description: "Stir in vanilla and milk"},
				{Description: "Grease an 8x8 in. pan with butter and pour in brownie mix"},
				{Description: "Bake for 23-25min - DO NOT OVERBAKE"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Omelet and Greens",
				Description: "Quick, crafty omelet with greens!",
				Author:      "Taylor Murray",
				Category:    CategoryBreakfast,
			},
			Ingredients: []Ingredient{
				{Name: "Olive Oil", Quantity: 3, Unit: UnitTablespoons},
				{Name: "Onion, finely chopped", Quantity: 1, Unit: UnitNone},
				{Name: "Large Egg", Quantity: 8, Unit: UnitNone},
				{Name: "Kosher Salt", Quantity: 1, Unit: UnitNone},
				{Name: "Unsalted Butter", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Parmesan, finely grated", Quantity: 1, Unit: UnitOunces},
				{Name: "Fresh Lemon Juice", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Baby Spinach", Quantity: 3, Unit: UnitOunces},
			},
			Directions: []Direction{
				{Description: "Heat 1 tbsp olive oil in large non stick skillet on medium heat"},
				{Description: "Add onions until tender, about 6 minutes then transfer to a small bowl"},
				{Description: "In a different bowl, whisk eggs, 1 tbs water, and 0.5 tsp salt"},
				{Description: "Return skillet to medium heat and butter"},
				{Description: "Add eggs, constantly stirring until eggs partially set"},
				{Description: "Turn heat to low and cover"},
				{Description: "Continue cooking till eggs are just set, 4-5 min"},
				{Description: "Top with parmesan and onions, fold in half", IsOptional: true},
				{Description: "In a medium bowl, whisk lemon juice, 2 tbs olive oil, toss with spinach and serve with omelet"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Vegetarian Chili",
				Description: "Warm, comforting, and filling vegetarian chili",
				Author:      "Makeinze Gore",
				Category:    CategoryLunch,
			},
			Ingredients: []Ingredient{
				{Name: "Chopped Onion", Quantity: 1, Unit: UnitNone},
				{Name: "Chopped Red Bell Pepper", Quantity: 1, Unit: UnitNone},
				{Name: "Peeled and finely chopped carrot", Quantity: 1, Unit: UnitNone},
				{Name: "Minced Garlic Cloves", Quantity: 3, Unit: UnitNone},
				{Name: "Finely Chopped Jalapeno", Quantity: 1, Unit: UnitNone},
				{Name: "Tomato Paste", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Can of Pinto Beans, Drained and Rinsed", Quantity: 1, Unit: UnitNone},
				{Name: "Can of Black Beans, Drained and Rinsed", Quantity: 1, Unit: UnitNone},
				{Name: "Can of Kidney Beans, Drained and Rinsed", Quantity: 1, Unit: UnitNone},
				{Name: "Can of Fire Roasted Tomatoes", Quantity: 1, Unit: UnitNone},
				{Name: "Vegetable Broth", Quantity: 3, Unit: UnitCups},
				{Name: "Chili Powder", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Cumin", Quantity: 1, Unit: UnitTablespoons},
				{Name: "Oregano", Quantity: 2, Unit: UnitTeaspoons},
			},
			Directions: []Direction{
				{Description: "In a large pot over medium heat, heat olive oil then add onions, bell peppers and carrots"},
				{Description: "Saute until soft - about 5 min"},
				{Description: "Add garlic and jalapeno and cool until fragrant - about 1 min"},
				{Description: "Add tomato paste and stir to coat vegetables"},
				{Description: "Add tomatoes, beans, broth, and seasonings"},
				{Description: "Season with salt and pepper to desire"},
				{Description: "Bring to a boil then reduce heat and let simmer for 30min"},
				{Description: "Serve with cheese, sour cream, and cilantro", IsOptional: true},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Classic Shrimp Scampi",
				Description: "Simple, delicate shrimp bedded in a delicious set of pasta that will melt your tastebuds!",
				Author:      "Sarah Taller",
				Category:    CategoryDinner,
			},
			Ingredients: []Ingredient{
				{Name: "Linguini", Quantity: 12, Unit: UnitOunces},
				{Name: "Large shrimp, peeled", Quantity: 20, Unit: UnitOunces},
				{Name: "Extra-virgin olive oil", Quantity: 0.33, Unit: UnitCups},
				{Name: "Minced garlic clove", Quantity: 5, Unit: UnitNone},
				{Name: "Red pepper flakes", Quantity: 0.5, Unit: UnitTeaspoons},
				{Name: "White Wine", Quantity: 0.3, Unit: UnitCups},
				{Name: "Lemon", Quantity: 3, Unit: UnitNone},
				{Name: "Unsalted butter, cut into pieces", Quantity: 4, Unit: UnitTablespoons},
				{Name: "Finely Chopped Fresh Parsley", Quantity: 0.25, Unit: UnitCups},
			},
			Directions: []Direction{
				{Description: "Bring large pot of salt water to a boil"},
				{Description: "Add the liguine and cook as label directs"},
				{Description: "Reserve 1 cup cooking water, then drain"},
				{Description: "Season shrimp with salt"},
				{Description: "Heat olive oil in large skillet over medium-heat"},
				{Description: "Add garlic and red pepper flakes and cook until garlic is golden, 30sec-1min"},
				{Description: "Add shrimp and cook, stirring occasionally, until pink and just cooked through: 1-2min per side, then remove shrimp"},
				{Description: "Add the wine and juice of a lemon to the skillet and simmer slightly reduced, 2 min"},
				{Description: "Return shrimp and any juices to the skillet alongside linguini, butter, and a 0.5 cup of cooking water"},
				{Description: "Continue to cook, tossing, until the butter is melted and the shrimp is hot, about 2 min"},
				{Description: "Season with salt, stir in parsley"},
				{Description: "Serve with lemon wedges!", IsOptional: true},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Chocolate Billionaires",
				Description: "Chocolate and caramel candies that are to die for!",
				Author:      "Jack B",
				Category:    CategoryDessert,
			},
			Ingredients: []Ingredient{
				{Name: "Caramel Candies", Quantity: 14, Unit: UnitOunces},
				{Name: "Water", Quantity: 3, Unit: UnitTablespoons},
				{Name: "Chopped Pecans", Quantity: 1.25, Unit: UnitCups},
				{Name: "Rice Krispies", Quantity: 1, Unit: UnitCups},
				{Name: "Milk Chocolate Chips", Quantity: 3, Unit: UnitCups},
				{Name: "Shortening", Quantity: 1.25, Unit: UnitTeaspoons},
			},
			Directions: []Direction{
				{Description: "Line 2 baking sheets with waxed paper"},
				{Description: "Grease paper and set aside"},
				{Description: "In a large heavy saucepan, combine caramels and water"},
				{Description: "Cook and stir over low heat until smooth"},
				{Description: "Stir in pecans and rice krispies until coated"},
				{Description: "Put mixture onto prepared pans"},
				{Description: "Refrigerate for 10 mins or until firm"},
				{Description: "Melt chocolate chips and shortening"},
				{Description: "Stir until smooth"},
				{Description: "Dip candy into chocolate, coating all sides"},
				{Description: "Allow excess to drip off"},
				{Description: "Place on prepared pans and refrigerate until set"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Mac & Cheese",
				Description: "Macaroni & Cheese",
				Author:      "Travis B",
				Category:    CategoryDinner,
			},
			Ingredients: []Ingredient{
				{Name: "Elbow Macaroni", Quantity: 12, Unit: UnitOunces},
				{Name: "Butter", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Small chopped onion", Quantity: 1, Unit: UnitNone},
				{Name: "Milk", Quantity: 4, Unit: UnitCups},
				{Name: "Flour", Quantity: 0.3, Unit: UnitCups},
				{Name: "Bay Leaf", Quantity: 1, Unit: UnitNone},
				{Name: "Thyme", Quantity: 0.5, Unit: UnitTeaspoons},
				{Name: "Pepper", Quantity: 1, Unit: UnitTeaspoons},
				{Name: "Salt", Quantity: 1, Unit: UnitTeaspoons},
				{Name: "Shredded Sharp Cheddar", Quantity: 1, Unit: UnitCups},
			},
			Directions: []Direction{
				{Description: "Heat oven to 375. Lightly coat 13 x 9 baking dish with vegetable cooking spray."},
				{Description: "Start to cook pasta."},
				{Description: "Meanwhile, melt 1 tablespoon butter in a saucepan over medium heat. Add onion, and cook until softened, about 3 min."},
				{Description: "Whisk together 1/2 cup milk and flour until smooth."},
				{Description: "Add milk texture to onion, then whisk in remaining 3.5 cups milk, bay leaf, thyme, salt, and pepper."},
				{Description: "Cook over medium-low heat 10-12min, stirring occasionally, until slight thickened."},
				{Description: "With slotted spoon, remove bay leaf. Stir in cheese until melted."},
				{Description: "Drain pasta and stir into cheese mixture."},
				{Description: "Pour into prepared dish and bake for 35 minutes, or until cheese is bubbly."},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Veggie Soup",
				Description: "Classic Vegetable Soup",
				Author:      "Travis B",
				Category:    CategoryDinner,
			},
			Ingredients: []Ingredient{
				{Name: "Diced Yellow Onion", Quantity: 1, Unit: UnitNone},
				{Name: "Minced Garlic Clove", Quantity: 4, Unit: UnitNone},
				{Name: "Diced Celery Stalk", Quantity: 1, Unit: UnitNone},
				{Name: "Shredded Carrots", Quantity: 1, Unit: UnitCups},
				{Name: "Broccolli florets", Quantity: 1, Unit: UnitCups},
				{Name: "Cubed Zucchini", Quantity: 1, Unit: UnitNone},
				{Name: "Spinach", Quantity: 3, Unit: UnitCups},
				{Name: "Peeled and Cubed Potato", Quantity: 1, Unit: UnitNone},
				{Name: "Can of Kidney Beans", Quantity: 1, Unit: UnitNone},
				{Name: "Box of Vegetable Stock", Quantity: 1, Unit: UnitNone},
				{Name: "Can of Diced Tomatoes", Quantity: 1, Unit: UnitNone},
			},
			Directions: []Direction{
				{Description: "Cook onion and garlic on high heat until onion is translucent, about 5 min"},
				{Description: "Add celery, carrots, parsley, and cook for 5-7min"},
				{Description: "Add diced tomatoes, vegetable stock, and potato. Bring to boil and let simmer for 45min"},
				{Description: "Add broccolli, zucchini, and kidney beans. Bring back to boil and then let simmer for 15 more min"},
				{Description: "Serve with spinach and parmesan cheese", IsOptional: true},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "White Clam Sauce",
				Description: "A simple recipe for quick comfort food",
				Author:      "Henry Minden",
				Category:    CategoryDinner,
			},
			Ingredients: []Ingredient{
				{Name: "Canned Clams", Quantity: 40, Unit: UnitOunces},
				{Name: "Garlic Clove", Quantity: 8, Unit: UnitNone},
				{Name: "Onion", Quantity: 1, Unit: UnitNone},
				{Name: "White Wine", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Butter", Quantity: 4, Unit: UnitTablespoons},
			},
			Directions: []Direction{
				{Description: "Chop garlic and onions"},
				{Description: "Saute garlic and onions in olive oil"},
				{Description: "Add clams and 1/2 the juice from the cans"},
				{Description: "Add butter, wine, and salt pepper to taste"},
				{Description: "Simmer for 15min until sauce reduces by half"},
				{Description: "Serve over favorite pasta"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Granola Bowl",
				Description: "A dense and delicious breakfast",
				Author:      "Ben",
				Category:    CategoryBreakfast,
			},
			Ingredients: []Ingredient{
				{Name: "Granola", Quantity: 0.5, Unit: UnitCups},
				{Name: "Banana", Quantity: 1, Unit: UnitNone},
				{Name: "Peanut Butter", Quantity: 2, Unit: UnitTablespoons},
			},
			Directions: []Direction{
				{Description: "Slice the banana"},
				{Description: "Combine all ingredients in a bowl"},
				{Description: "Add chocolate chips", IsOptional: true},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Lemon Posset",
				Description: "Three ingredients only, light and creamy!",
				Author:      "Scotty",
				Category:    CategoryDessert,
			},
			Ingredients: []Ingredient{
				{Name: "Heavy Cream", Quantity: 16, Unit: UnitOunces},
				{Name: "Sugar", Quantity: 0.75, Unit: UnitCups},
				{Name: "Lemon", Quantity: 6, Unit: UnitNone},
				{Name: "Lemon Juice", Quantity: 5, Unit: UnitTablespoons},
				{Name: "Lemon Zest", Quantity: 2, Unit: UnitTablespoons},
			},
			Directions: []Direction{
				{Description: "Bring cream and sugar to a gentle boil over a medium-high heat, stirring until the sugar dissolves"},
				{Description: "Reduce heat to medium, and cook for 3 minutes, stirring constantly, adjusting heat as needed to prevent mixture from boiling over. Remove from heat."},
				{Description: "Stir in lemon juice and zest, let sit for 10 minutes to cool"},
				{Description: "Stir mixture again, then divide among six glasses, ramekins, or 12 lemon shell halves"},
				{Description: "Cover with plastic wrap and chill overnight until set"},
				{Description: "Before serving, garnish with lemon zest, berries, or mint"},
			},
		},
		{
			MainInformation: MainInformation{
				Name:        "Crumpets",
				Description: "Easy home-made goodness",
				Author:      "Scotty",
				Category:    CategoryBreakfast,
			},
			Ingredients: []Ingredient{
				{Name: "Unbleached All-Purpose Flour", Quantity: 3.5, Unit: UnitCups},
				{Name: "Baking Powder", Quantity: 1, Unit: UnitTeaspoons},
				{Name: "Instant Yeast", Quantity: 2.5, Unit: UnitTeaspoons},
				{Name: "Salt", Quantity: 1.25, Unit: UnitTeaspoons},
				{Name: "Melted Butter", Quantity: 2, Unit: UnitTablespoons},
				{Name: "Milk, lukewarm", Quantity: 1, Unit: UnitCups},
				{Name: "Water, lukewarm", Quantity: 1.5, Unit: UnitCups},
			},
			Directions: []Direction{
				{Description: "To measure flour, weigh it or carefully scoop some into a cup, then remove any excess"},
				{Description: "Beat the ingredients together for 2 minutes on high speed. It’s best to use a high-speed stand or hand mixer"},
				{Description: "Let the batter sit out for an hour at room temperature, covered. It will grow and start to bubble up"},
				{Description: "Near the end of your rest time, heat a griddle to around 325 degrees Fahrenheit on medium. If you don’t have an electric griddle, set a frying pan to a lower temperature than pancakes"},
				{Description: "Prepare a griddle or frying pan by lightly greasing it, and then lay as many oiled English muffin rings (3 3/4 inches in diameter) in the pan as will fit"},
				{Description: "Use a muffin scoop to transfer 1/4 cup of sticky batter to each ring"},
				{Description: "Remove the rings with a pair of tongs after waiting around 4 minutes. After 10 minutes on the first side, the crumpets should have little bubbles/holes on top. They should have a dry, wrinkled appearance around the edges. Their undersides will be a golden brown with white spots"},
				{Description: "Flip the crumpets over and cook for another 5 minutes to brown the tops and fully cook the insides. Although “real” crumpets have a white top, the crumpet police won’t punish you for spicing up your breakfast with a little color"},
				{Description: "Once the crumpets are done, take them out of the pan and cook the rest of the batter"},
				{Description: "Serve hot. Alternatively, let cool, then wrap in plastic and keep at room temperature. To serve later, warm in the toaster. Serve with butter or butter and jam"},
			},
		},
	}
	for i := range recipes {
		recipes[i].ID = uuid.New()
	}
	return recipes
}
