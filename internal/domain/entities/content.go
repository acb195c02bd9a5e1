package entities

// Project is one portfolio entry on the marketing site.
type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	Tech        []string `json:"tech"`
	Link        string   `json:"link"`
}

// Stat is one headline figure in the about section.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Value is one company value bullet in the about section.
type Value struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SiteContent is the static marketing copy served to the site shell. The
// services grid is not part of it; services come from the catalog so admin
// price edits show up immediately.
type SiteContent struct {
	HeroTitle    string    `json:"hero_title"`
	HeroTagline  string    `json:"hero_tagline"`
	AboutHeading string    `json:"about_heading"`
	AboutStory   []string  `json:"about_story"`
	Values       []Value   `json:"values"`
	Stats        []Stat    `json:"stats"`
	Projects     []Project `json:"projects"`
}

// DefaultContent returns the site copy as shipped.
func DefaultContent() SiteContent {
	return SiteContent{
		HeroTitle:    "love dk tech",
		HeroTagline:  "Transforming Ideas into Digital Reality",
		AboutHeading: "Who we are and what we stand for",
		AboutStory: []string{
			"At love dk tech, we are passionate about transforming ideas into powerful digital solutions. As a registered development company, we specialize in creating innovative web and mobile applications that drive real business results.",
			"Founded by Yaya Traore, an entrepreneur and engineer with a unique blend of expertise, love dk tech is built on a foundation of technical excellence and business acumen.",
			"This unique combination enables us to not only build exceptional technology but also understand the strategic needs of our clients, delivering solutions that truly align with business objectives and create meaningful impact for communities worldwide.",
		},
		Values: []Value{
			{Title: "Innovation-Driven", Description: "Pushing boundaries with cutting-edge technology"},
			{Title: "Client-Focused", Description: "Your success is our priority"},
			{Title: "Quality & Reliability", Description: "Building solutions that last"},
			{Title: "Community Impact", Description: "Creating positive change through technology"},
		},
		Stats: []Stat{
			{Value: "5+", Label: "Years Experience"},
			{Value: "50+", Label: "Projects Delivered"},
			{Value: "100%", Label: "Client Satisfaction"},
			{Value: "20+", Label: "Technologies"},
		},
		Projects: []Project{
			{
				Title:       "Senparc Dakar",
				Description: "Le Spot Fun pour Petits et Grands - Parc pour enfants sécurisé, trampolines, jeux gonflables, restaurant & gourmandises",
				ImageURL:    "https://api.microlink.io/?url=https://senparcdakar.vercel.app/&screenshot=true&meta=false&embed=screenshot.url",
				Tech:        []string{"Next.js", "React", "Tailwind CSS"},
				Link:        "https://senparcdakar.vercel.app/",
			},
			{
				Title:       "Yarahman Dental",
				Description: "Modern dental clinic website with appointment scheduling and service information",
				ImageURL:    "https://api.microlink.io/?url=https://yarahmandental.vercel.app/&screenshot=true&meta=false&embed=screenshot.url",
				Tech:        []string{"Next.js", "React", "Tailwind CSS"},
				Link:        "https://yarahmandental.vercel.app/",
			},
			{
				Title:       "Weuzz Live Privé",
				Description: "Exclusive live streaming and content platform",
				ImageURL:    "https://image.thum.io/get/width/600/crop/800/https://weuzzliveprive.vercel.app/",
				Tech:        []string{"Next.js", "React", "Tailwind CSS"},
				Link:        "https://weuzzliveprive.vercel.app/",
			},
			{
				Title:       "Babel Shop Boutique",
				Description: "Online boutique shop for fashion and lifestyle products",
				ImageURL:    "",
				Tech:        []string{"Next.js", "E-commerce", "Tailwind CSS"},
				Link:        "https://babelshopboutique.vercel.app/",
			},
			{
				Title:       "Luxury Perfume",
				Description: "Elegant showcase website for luxury fragrances and perfumes",
				ImageURL:    "https://api.microlink.io/?url=https://v0-luxury-perfume-website-zeta.vercel.app/&screenshot=true&meta=false&embed=screenshot.url",
				Tech:        []string{"Next.js", "React", "Tailwind CSS"},
				Link:        "https://v0-luxury-perfume-website-zeta.vercel.app/",
			},
			{
				Title:       "Jobad Gym",
				Description: "Modern gym website with class schedules and membership plans",
				ImageURL:    "https://image.thum.io/get/width/600/crop/800/https://v0-jobad-gym-website.vercel.app/",
				Tech:        []string{"Next.js", "React", "Tailwind CSS"},
				Link:        "https://v0-jobad-gym-website.vercel.app/",
			},
			{
				Title:       "Diaspora Trust",
				Description: "A comprehensive platform connecting diaspora communities with trusted financial services and investment opportunities",
				ImageURL:    "https://api.microlink.io/?url=https://www.diasporatrust.xyz/&screenshot=true&meta=false&embed=screenshot.url",
				Tech:        []string{"Next.js", "TypeScript", "Tailwind CSS"},
				Link:        "https://www.diasporatrust.xyz/",
			},
			{
				Title:       "Achly Tontine",
				Description: "Modern digital solution for streamlined business operations and community engagement platform",
				ImageURL:    "https://api.microlink.io/?url=https://achlytontine.com/&screenshot=true&meta=false&embed=screenshot.url",
				Tech:        []string{"React", "Node.js", "MongoDB"},
				Link:        "https://achlytontine.com/",
			},
		},
	}
}
