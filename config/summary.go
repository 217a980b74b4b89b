package config

// summary is the content script of the default document.
var summary = []Line{
	{Kind: "title", Text: "Internactive App Summary"},
	{Kind: "blank"},
	{Kind: "h", Text: "What it is"},
	{Kind: "p", Text: "Internactive is a browse-first internship marketplace built with Next.js and Supabase."},
	{Kind: "p", Text: "Students discover and apply to internships, while employers publish roles and manage applicants."},
	{Kind: "blank"},
	{Kind: "h", Text: "Who it is for"},
	{Kind: "p", Text: "Primary users: college students seeking internships and employers hiring interns."},
	{Kind: "blank"},
	{Kind: "h", Text: "What it does"},
	{Kind: "b", Text: "Public internship feed with filters (category, pay, remote, experience, hours, location/radius)."},
	{Kind: "b", Text: "Student onboarding captures profile signals (majors, coursework, preferences) for better ranking."},
	{Kind: "b", Text: "Match scoring and ranking using canonical skills/coursework plus eligibility constraints."},
	{Kind: "b", Text: "Employer dashboard for posting internships and reviewing applicants with inbox controls."},
	{Kind: "b", Text: "Apply flows support native apply and external ATS links, with analytics event tracking."},
	{Kind: "b", Text: "Admin tools include internships/employers/students views and matching preview/report routes."},
	{Kind: "b", Text: "Stripe billing webhooks update employer verification and student premium subscription status."},
	{Kind: "blank"},
	{Kind: "h", Text: "How it works (repo-evidenced architecture)"},
	{Kind: "b", Text: "Frontend: Next.js App Router pages in /app plus shared UI/components."},
	{Kind: "b", Text: "App services: server-side route handlers in /app/api for analytics, auth, resume, coursework, billing."},
	{Kind: "b", Text: "Data + auth: Supabase SSR client for user/session queries; service-role client for admin/webhook writes."},
	{Kind: "b", Text: "Matching engine: lib/matching.ts; JobsView fetches internships, builds profile signals, then ranks."},
	{Kind: "b", Text: "Billing flow: Stripe -> /api/stripe/webhook -> Supabase tables (processed_stripe_events, subscriptions, profiles)."},
	{Kind: "b", Text: "Protected admin flow: middleware role-checks users.role and gates /admin routes."},
	{Kind: "blank"},
	{Kind: "h", Text: "How to run (minimal)"},
	{Kind: "n", Text: "1. Use Node 22.11.0 and npm >=10 (see .nvmrc and package.json engines)."},
	{Kind: "n", Text: "2. Install deps: npm ci"},
	{Kind: "n", Text: "3. Create env file: copy .env.example to .env.local and fill Supabase/Stripe values."},
	{Kind: "n", Text: "4. Start app: npm run dev, then open http://localhost:3000"},
	{Kind: "n", Text: "5. Optional verification: npm test"},
	{Kind: "n", Text: "6. Local DB bootstrap/seed workflow: Not found in repo."},
}
