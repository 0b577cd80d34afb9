package generator

// TemplateID names a response template. It is reported alongside generated
// output and used as a metrics label.
type TemplateID string

// Idea templates.
const (
	TemplateAIEntertainment      TemplateID = "ai_entertainment"
	TemplateMusicEntertainment   TemplateID = "music_entertainment"
	TemplateGenericEntertainment TemplateID = "entertainment"
	TemplateTechnology           TemplateID = "technology"
	TemplateLifestyle            TemplateID = "lifestyle"
	TemplateDefault              TemplateID = "default"
)

// Search templates.
const (
	TemplateSearchNews    TemplateID = "search_news"
	TemplateSearchProduct TemplateID = "search_product"
	TemplateSearchGeneric TemplateID = "search_generic"
)

// Placeholders filled in by fill.
const (
	placeholderQuery    = "{{query}}"
	placeholderCategory = "{{category}}"
)

const aiEntertainmentText = `# AI in Entertainment - Content Ideas

## 🎮 AI Gaming Content
• **"AI vs Human Gamers"** - Showcase AI playing popular games like Chess, Go, or even video games
• **"AI-Generated Game Characters"** - Explore how AI creates NPCs and storylines
• **"The Future of Gaming with AI"** - Discuss procedural generation and adaptive difficulty

## 🎬 AI in Movies & Media
• **"AI Actors & Deepfakes"** - Ethical implications and current technology
• **"AI-Written Scripts"** - Compare AI vs human storytelling
• **"Visual Effects Revolution"** - How AI transforms movie production

## 🎵 AI Music & Audio
• **"AI Composers"** - Showcase AI-generated music across genres
• **"Voice Cloning Technology"** - Demonstrate AI voice synthesis
• **"AI in Podcasting"** - Automated editing and content suggestions

## Content Angles
• **Educational:** "How AI is changing entertainment forever"
• **Comparison:** "AI vs Human creativity - who wins?"
• **Future-focused:** "Entertainment in 2030: An AI world"`

const musicEntertainmentText = `# Music Entertainment - Content Ideas

## 🎵 Music Discovery Content
• **"Hidden Gems in {{category}}"** - Uncover lesser-known artists
• **"Music Evolution Timeline"** - Show how genres developed
• **"Behind the Scenes"** - Studio sessions and creative processes

## 🎤 Interactive Music Content
• **"Guess the Song Challenge"** - Engage audience with music quizzes
• **"Artist Reaction Videos"** - React to new releases or classics
• **"Music Production Breakdown"** - Analyze hit songs

## 🎸 Educational Music Content
• **"Music Theory Made Simple"** - Break down complex concepts
• **"Instrument Spotlights"** - Feature different instruments
• **"Genre Deep Dives"** - Explore specific music styles`

const genericEntertainmentText = `# {{query}} in {{category}} - Content Ideas

## 🎭 Entertainment Content Angles
• **"Top 10 {{query}} moments"** - Countdown format
• **"Behind the scenes of {{query}}"** - Exclusive insights
• **"{{query}} vs Reality"** - Compare fiction to facts

## 📱 Social Media Ready Ideas
• **Quick Facts:** "5 things you didn't know about {{query}}"
• **Trending Topics:** Connect {{query}} to current events
• **Interactive Content:** Polls and Q&A about {{query}}

## 🎬 Video Content Formats
• **Reviews & Reactions:** Share opinions on {{query}}
• **Tutorials:** "How to get into {{query}}"
• **Comparisons:** "{{query}} then vs now"`

const technologyText = `# {{query}} in Technology - Content Ideas

## 💻 Tech Explanation Content
• **"{{query}} Explained Simply"** - Break down complex concepts
• **"Future of {{query}}"** - Predictions and trends
• **"{{query}} in Daily Life"** - Practical applications

## 🔧 Hands-on Tech Content
• **"Building with {{query}}"** - DIY projects and tutorials
• **"Testing {{query}}"** - Product reviews and comparisons
• **"Troubleshooting {{query}}"** - Common problems and solutions

## 🚀 Innovation Spotlights
• **"Startups using {{query}}"** - Emerging companies
• **"{{query}} Success Stories"** - Case studies
• **"Myths about {{query}}"** - Debunk misconceptions`

const lifestyleText = `# {{query}} Lifestyle Content - Ideas

## 🌟 Lifestyle Integration
• **"Daily {{query}} Routine"** - Show practical implementation
• **"{{query}} on a Budget"** - Affordable approaches
• **"Beginner's Guide to {{query}}"** - Getting started tips

## 📸 Visual Lifestyle Content
• **"{{query}} Aesthetic"** - Visual inspiration and mood boards
• **"Before & After {{query}}"** - Transformation content
• **"{{query}} Haul"** - Product showcases and reviews

## 💡 Inspirational Content
• **"How {{query}} Changed My Life"** - Personal stories
• **"{{query}} Challenges"** - 30-day challenges or goals
• **"{{query}} Community"** - Connect with like-minded people`

const defaultText = `# {{query}} Content Ideas

## 📚 Educational Content
• **"Complete Guide to {{query}}"** - Comprehensive overview
• **"Common Mistakes in {{query}}"** - What to avoid
• **"{{query}} for Beginners"** - Entry-level content

## 🎯 Engaging Formats
• **"{{query}} Myths Busted"** - Fact vs fiction
• **"{{query}} Timeline"** - Historical perspective
• **"{{query}} Around the World"** - Global perspectives

## 💬 Interactive Ideas
• **"Ask Me About {{query}}"** - Q&A sessions
• **"{{query}} Debates"** - Controversial topics
• **"Rate My {{query}}"** - Community feedback`

// tipsText is appended to every idea response.
const tipsText = `

## 🎬 Content Creation Tips
• **Hook:** Start with a surprising fact about {{query}}
• **Structure:** Problem → Solution → Call-to-action format
• **Visuals:** Use dynamic cuts and on-screen text for key points
• **Engagement:** Ask viewers to share their {{query}} experiences
• **Repurpose:** Turn main content into shorts, threads, and carousel posts

## 📊 Platform Optimization
• **YouTube:** 8-12 minute deep dives work best
• **TikTok/Instagram:** 15-60 second quick tips
• **Twitter:** Thread breakdowns of main points
• **LinkedIn:** Professional angle on {{query}}`

const searchNewsText = `# Latest News: {{query}}

## 📰 Top Stories
• **Breaking coverage** - The most recent headlines related to "{{query}}"
• **Developing story** - Ongoing updates as events unfold
• **Analysis** - Expert commentary on what this means

## 🕒 Timeline
• **Today:** First reports and official statements
• **This week:** Reactions and follow-up reporting
• **What's next:** Events to watch in the coming days

## 💡 Content Opportunities
• **Explainer:** "What you need to know about {{query}}"
• **Reaction:** Share your take while the topic is trending
• **Recap:** Summarize the key facts for your audience`

const searchProductText = `# Product Information: {{query}}

## 🛍️ Overview
• **What it is** - A summary of products matching "{{query}}"
• **Who it's for** - Typical users and use cases
• **Price range** - Budget, mid-range, and premium options

## ⭐ Reviews Summary
• **Pros:** Features reviewers highlight most often
• **Cons:** Common complaints and limitations
• **Verdict:** How it compares with popular alternatives

## 🎥 Content Opportunities
• **Honest review:** "I tried {{query}} for 30 days"
• **Comparison:** Side-by-side with competitors
• **Tutorial:** How to get the best results`

const searchGenericText = `# Information About: {{query}}

## 📖 Overview
• **Definition** - What "{{query}}" means and where it comes from
• **Key facts** - The essentials in a few bullet points
• **Why it matters** - Relevance to creators and audiences

## 🔍 Related Topics
• **Popular questions** - What people commonly ask about {{query}}
• **Related trends** - Connected subjects gaining attention
• **Further reading** - Angles worth researching next

## 💡 Content Opportunities
• **Beginner's guide:** "{{query}} explained in 60 seconds"
• **Deep dive:** A long-form breakdown for enthusiasts
• **Community:** Ask your audience what they know about {{query}}`
