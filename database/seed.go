package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taranjyot-singh/portfolio-backend/models"
)

var sampleProjects = []models.ProjectCreate{
	{
		Title:        "E-Commerce Platform",
		Description:  "A full-stack e-commerce solution built with React, Node.js, and MongoDB. Features include user authentication, payment integration, and real-time inventory management.",
		Image:        "https://images.unsplash.com/photo-1556742049-0cfed4f6a45d?w=500&h=300&fit=crop",
		Technologies: []string{"React", "Node.js", "MongoDB", "Stripe", "Socket.io"},
		LiveDemo:     "https://ecommerce-demo.example.com",
		Github:       "https://github.com/taranjyot-singh/ecommerce-platform",
		Featured:     true,
		Category:     "Full Stack",
	},
	{
		Title:        "AI-Powered Task Manager",
		Description:  "Smart task management application with AI-driven priority suggestions and automated scheduling. Built using React, FastAPI, and machine learning algorithms.",
		Image:        "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=500&h=300&fit=crop",
		Technologies: []string{"React", "FastAPI", "Python", "TensorFlow", "PostgreSQL"},
		LiveDemo:     "https://ai-taskmanager.example.com",
		Github:       "https://github.com/taranjyot-singh/ai-task-manager",
		Featured:     true,
		Category:     "AI/ML",
	},
	{
		Title:        "Real-Time Chat Application",
		Description:  "Modern chat application with real-time messaging, file sharing, and video calls. Features end-to-end encryption and group chat functionality.",
		Image:        "https://images.unsplash.com/photo-1577563908411-5077b6dc7624?w=500&h=300&fit=crop",
		Technologies: []string{"React", "Socket.io", "Express", "WebRTC", "Redis"},
		LiveDemo:     "https://chatapp-demo.example.com",
		Github:       "https://github.com/taranjyot-singh/realtime-chat",
		Featured:     true,
		Category:     "Real-time",
	},
	{
		Title:        "Weather Dashboard",
		Description:  "Beautiful weather dashboard with interactive maps, detailed forecasts, and personalized weather alerts. Built with React and integrated with multiple weather APIs.",
		Image:        "https://images.unsplash.com/photo-1504608524841-42fe6f032b4b?w=500&h=300&fit=crop",
		Technologies: []string{"React", "TypeScript", "Chart.js", "OpenWeather API"},
		LiveDemo:     "https://weather-dashboard.example.com",
		Github:       "https://github.com/taranjyot-singh/weather-dashboard",
		Featured:     false,
		Category:     "Frontend",
	},
	{
		Title:        "Personal Finance Tracker",
		Description:  "Comprehensive finance tracking application with budget planning, expense categorization, and financial insights. Includes secure bank integration.",
		Image:        "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=500&h=300&fit=crop",
		Technologies: []string{"React", "Node.js", "MySQL", "Plaid API", "D3.js"},
		LiveDemo:     "https://finance-tracker.example.com",
		Github:       "https://github.com/taranjyot-singh/finance-tracker",
		Featured:     false,
		Category:     "Full Stack",
	},
}

var sampleSkills = []models.SkillCreate{
	{Category: "Frontend", Skills: []string{"React", "Vue.js", "TypeScript", "Next.js", "Tailwind CSS", "SASS"}},
	{Category: "Backend", Skills: []string{"Node.js", "Python", "FastAPI", "Express.js", "Django", "REST APIs"}},
	{Category: "Database", Skills: []string{"MongoDB", "PostgreSQL", "MySQL", "Redis", "Firebase"}},
	{Category: "DevOps & Tools", Skills: []string{"Docker", "AWS", "Git", "CI/CD", "Nginx", "Linux"}},
	{Category: "Mobile", Skills: []string{"React Native", "Flutter", "iOS", "Android"}},
}

const sampleBiography = `I'm a passionate Software Development Engineer with over 4 years of experience building scalable web applications and mobile solutions.

My journey in software development began during my computer science studies, where I discovered the perfect blend of creativity and logic that programming offers. Since then, I've been dedicated to crafting exceptional digital experiences that solve real-world problems.

I specialize in full-stack development with expertise in React, Node.js, and modern web technologies. I'm particularly passionate about creating intuitive user interfaces, optimizing application performance, and implementing robust backend architectures.

When I'm not coding, you can find me exploring new technologies, contributing to open-source projects, or mentoring aspiring developers. I believe in continuous learning and staying updated with the latest industry trends and best practices.`

// Seed populates the store with the fixed sample set when the projects
// collection is empty, reporting whether it ran. The trigger only checks
// projects, but a run clears and reseeds skills and the biography as well.
func (d Database) Seed(ctx context.Context) (bool, error) {
	count, err := d.projectRepo.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	collections := []*mongo.Collection{
		d.projectRepo.collection,
		d.skillRepo.collection,
		d.biographyRepo.collection,
	}
	for _, collection := range collections {
		if _, err := collection.DeleteMany(ctx, bson.M{}); err != nil {
			return false, err
		}
	}

	for _, input := range sampleProjects {
		project := models.NewProject(input)
		if err := d.projectRepo.Add(ctx, &project); err != nil {
			return false, err
		}
	}

	for _, input := range sampleSkills {
		skill := models.NewSkill(input)
		if err := d.skillRepo.Add(ctx, &skill); err != nil {
			return false, err
		}
	}

	if _, err := d.biographyRepo.Upsert(ctx, sampleBiography); err != nil {
		return false, err
	}

	return true, nil
}
