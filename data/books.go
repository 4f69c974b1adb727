package data

import "bookrental/model"

// SampleBooks is the catalog loaded at startup. Available counts for
// books 1 and 7 already account for the two seeded open rentals.
func SampleBooks() []model.Book {
	return []model.Book{
		{
			ID: "1", Title: "The Midnight Library", Author: "Matt Haig",
			ISBN: "9780525559474", Genre: "Fiction",
			Description: "Between life and death there is a library, and within that library, the shelves go on forever.",
			CoverImage:  "/covers/midnight-library.jpg", PublishedYear: 2020,
			TotalCopies: 5, AvailableCopies: 4, Rating: 4.2,
			Tags: []string{"philosophy", "life choices", "parallel lives"},
		},
		{
			ID: "2", Title: "Project Hail Mary", Author: "Andy Weir",
			ISBN: "9780593135204", Genre: "Science Fiction",
			Description: "A lone astronaut must save the earth from disaster in this cinematic thriller.",
			CoverImage:  "/covers/project-hail-mary.jpg", PublishedYear: 2021,
			TotalCopies: 3, AvailableCopies: 3, Rating: 4.6,
			Tags: []string{"space", "survival", "science"},
		},
		{
			ID: "3", Title: "Klara and the Sun", Author: "Kazuo Ishiguro",
			ISBN: "9780593318171", Genre: "Science Fiction",
			Description: "An artificial friend observes the world, hoping a customer will soon choose her.",
			CoverImage:  "/covers/klara-and-the-sun.jpg", PublishedYear: 2021,
			TotalCopies: 4, AvailableCopies: 4, Rating: 3.9,
			Tags: []string{"artificial intelligence", "dystopia", "love"},
		},
		{
			ID: "4", Title: "The Seven Husbands of Evelyn Hugo", Author: "Taylor Jenkins Reid",
			ISBN: "9781501161933", Genre: "Romance",
			Description: "An aging Hollywood icon finally tells the truth about her glamorous and scandalous life.",
			CoverImage:  "/covers/evelyn-hugo.jpg", PublishedYear: 2017,
			TotalCopies: 6, AvailableCopies: 6, Rating: 4.5,
			Tags: []string{"hollywood", "secrets", "lgbtq"},
		},
		{
			ID: "5", Title: "Educated", Author: "Tara Westover",
			ISBN: "9780399590504", Genre: "Biography",
			Description: "A memoir about a young girl who, kept out of school, leaves her survivalist family.",
			CoverImage:  "/covers/educated.jpg", PublishedYear: 2018,
			TotalCopies: 4, AvailableCopies: 4, Rating: 4.4,
			Tags: []string{"memoir", "education", "family"},
		},
		{
			ID: "6", Title: "Dune", Author: "Frank Herbert",
			ISBN: "9780441013593", Genre: "Science Fiction",
			Description: "The sweeping saga of Paul Atreides and the desert planet Arrakis.",
			CoverImage:  "/covers/dune.jpg", PublishedYear: 1965,
			TotalCopies: 5, AvailableCopies: 5, Rating: 4.3,
			Tags: []string{"space", "politics", "classic"},
		},
		{
			ID: "7", Title: "The Thursday Murder Club", Author: "Richard Osman",
			ISBN: "9781984880567", Genre: "Mystery",
			Description: "Four unlikely friends in a retirement village meet weekly to investigate cold cases.",
			CoverImage:  "/covers/thursday-murder-club.jpg", PublishedYear: 2020,
			TotalCopies: 3, AvailableCopies: 2, Rating: 4.1,
			Tags: []string{"cozy mystery", "friendship", "humor"},
		},
		{
			ID: "8", Title: "Atomic Habits", Author: "James Clear",
			ISBN: "9780735211292", Genre: "Self-Help",
			Description: "Tiny changes, remarkable results: a proven framework for improving every day.",
			CoverImage:  "/covers/atomic-habits.jpg", PublishedYear: 2018,
			TotalCopies: 8, AvailableCopies: 8, Rating: 4.4,
			Tags: []string{"habits", "productivity", "psychology"},
		},
		{
			ID: "9", Title: "Circe", Author: "Madeline Miller",
			ISBN: "9780316556347", Genre: "Fantasy",
			Description: "The witch of Aiaia tells her own story, from awkward nymph to formidable sorceress.",
			CoverImage:  "/covers/circe.jpg", PublishedYear: 2018,
			TotalCopies: 4, AvailableCopies: 4, Rating: 4.3,
			Tags: []string{"greek mythology", "witches", "retelling"},
		},
		{
			ID: "10", Title: "The Silent Patient", Author: "Alex Michaelides",
			ISBN: "9781250301697", Genre: "Mystery",
			Description: "A woman shoots her husband and never speaks another word.",
			CoverImage:  "/covers/silent-patient.jpg", PublishedYear: 2019,
			TotalCopies: 5, AvailableCopies: 5, Rating: 4.0,
			Tags: []string{"psychological thriller", "twist", "therapy"},
		},
		{
			ID: "11", Title: "Where the Crawdads Sing", Author: "Delia Owens",
			ISBN: "9780735219090", Genre: "Fiction",
			Description: "A murder mystery and a coming-of-age story set in the marshes of North Carolina.",
			CoverImage:  "/covers/crawdads.jpg", PublishedYear: 2018,
			TotalCopies: 6, AvailableCopies: 6, Rating: 4.2,
			Tags: []string{"nature", "mystery", "coming of age"},
		},
		{
			ID: "12", Title: "The Pragmatic Programmer", Author: "David Thomas",
			ISBN: "9780135957059", Genre: "Technology",
			Description: "Your journey to mastery: timeless lessons on writing better software.",
			CoverImage:  "/covers/pragmatic-programmer.jpg", PublishedYear: 1999,
			TotalCopies: 3, AvailableCopies: 3, Rating: 4.5,
			Tags: []string{"programming", "software engineering", "career"},
		},
	}
}
