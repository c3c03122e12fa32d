package catalog

// Typical-file categories in declaration order.
const (
	Documents   Category = "documents"
	Images      Category = "images"
	Code        Category = "code"
	Media       Category = "media"
	Archives    Category = "archives"
	System      Category = "system"
	Versioned   Category = "versioned"
	DateStamped Category = "date-stamped"
	Office      Category = "office"
	Personal    Category = "personal"
)

var typicalTable = []group{
	{Documents, []string{
		"meeting_notes.txt", "project_proposal.doc", "budget_2024.xlsx",
		"presentation_draft.ppt", "contract_final.pdf", "readme.md",
		"user_manual.txt", "requirements.doc", "invoice_march.pdf",
		"report_quarterly.xlsx", "agenda_meeting.doc", "notes_personal.txt",
		"checklist_project.md", "summary_executive.pdf", "draft_letter.txt",
	}},
	{Images, []string{
		"vacation_photo.jpg", "profile_picture.png", "screenshot_desktop.png",
		"family_portrait.jpg", "logo_company.svg", "diagram_flowchart.png",
		"photo_sunset.jpg", "icon_app.png", "banner_website.jpg",
		"chart_sales.png", "image_background.jpg", "thumbnail_video.png",
	}},
	{Code, []string{
		"main.py", "config.json", "app.js", "style.css", "index.html",
		"database.sql", "server.php", "component.tsx", "utils.java", "makefile",
	}},
	{Media, []string{
		"song_favorite.mp3", "podcast_episode.mp3", "video_tutorial.mp4",
		"movie_trailer.mp4", "audiobook_chapter.m4a", "ringtone_custom.mp3",
		"presentation_video.mov", "interview_recording.wav",
	}},
	{Archives, []string{
		"backup_database.zip", "project_archive.tar.gz", "photos_2023.rar",
		"documents_old.7z", "website_backup.zip", "data_export.csv",
		"settings_backup.json", "files_compressed.tar",
	}},
	{System, []string{
		"config.ini", "settings.xml", "preferences.plist", "data.db",
		"cache.tmp", "log_application.log", "error_report.txt",
	}},
	{Versioned, []string{
		"document_v1.txt", "presentation_v2.ppt", "design_v3.psd",
		"contract_final_v1.pdf", "proposal_draft_v2.doc", "budget_2024_v1.xlsx",
		"app_release_v1.0.zip", "manual_user_v2.1.pdf", "schema_db_v3.sql",
		"template_email_v1.html",
	}},
	{DateStamped, []string{
		"report_2024_01_15.pdf", "backup_2024_02_01.zip", "notes_2024_03_10.txt",
		"meeting_2024_04_05.doc", "data_2024_05_20.csv", "log_2024_06_30.txt",
		"photo_2024_07_04.jpg", "video_2024_08_12.mp4", "invoice_2024_09_01.pdf",
		"summary_2024_10_15.xlsx",
	}},
	{Office, []string{
		"annual_report.pdf", "employee_handbook.doc", "timesheet_template.xlsx",
		"expense_report.xlsx", "company_policy.pdf", "org_chart.ppt",
		"project_timeline.xlsx", "client_list.csv", "product_catalog.pdf",
		"training_materials.ppt",
	}},
	{Personal, []string{
		"recipe_chocolate_cake.txt", "shopping_list.txt", "travel_itinerary.pdf",
		"book_recommendations.md", "workout_routine.txt", "grocery_budget.xlsx",
		"hobby_project_notes.txt", "home_improvement.doc", "garden_plan.pdf",
		"personal_journal.txt",
	}},
}
