// Package texts holds the user-facing message catalog in the supported
// interface languages. Lookups fall back to English when a translation is
// missing.
package texts

import "fmt"

var catalog = map[string]map[string]string{
	"en": {
		"choose_language":       "Please choose your language:",
		"language_saved":        "Language saved.",
		"welcome":               "Welcome back!",
		"main_menu":             "What would you like to do?",
		"menu_select_meeting":   "Events",
		"menu_my_profile":       "My profile",
		"menu_change_language":  "Change language",
		"ask_name":              "What is your full name?",
		"ask_phone":             "Send your phone number or share your contact.",
		"ask_company":           "What company do you represent?",
		"profile_saved":         "Your profile has been saved.",
		"profile_view":          "Name: %s\nPhone: %s\nCompany: %s",
		"profile_empty":         "Your profile is empty. Fill it in to register for events.",
		"profile_incomplete":    "Please fill in your profile first.",
		"ask_new_value":         "Send the new value.",
		"value_updated":         "Updated.",
		"meetings_list":         "Upcoming events:",
		"no_meetings":           "No events scheduled yet.",
		"meeting_details":       "%s\nWhen: %s\nWhere: %s",
		"followed":              "You are registered. See you there!",
		"unfollowed":            "Registration withdrawn.",
		"wifi_info":             "Network: %s\nPassword: %s",
		"wifi_none":             "WiFi details are not available yet.",
		"ask_wifi_network":      "Send the network name.",
		"ask_wifi_password":     "Send the network password.",
		"wifi_saved":            "WiFi details saved.",
		"wifi_cleared":          "WiFi details removed.",
		"agenda_title":          "Program:",
		"agenda_empty":          "The program has not been published yet.",
		"agenda_item":           "%s - %s  %s",
		"ask_agenda_title":      "Send the session title.",
		"ask_agenda_start":      "Send the start time, e.g. 09:30.",
		"ask_agenda_end":        "Send the end time.",
		"ask_agenda_desc":       "Send a description, or skip this step.",
		"agenda_item_saved":     "Program entry saved.",
		"agenda_item_deleted":   "Program entry deleted.",
		"agenda_cleared":        "Program cleared.",
		"alert_on":              "Reminder is on for this session.",
		"alert_off":             "Reminder is off for this session.",
		"photos_none":           "No venue photos yet.",
		"ask_photo":             "Send photos of the venue. They are saved as they arrive.",
		"photo_saved":           "Photo saved. Send more or go back.",
		"photos_cleared":        "Venue photos removed.",
		"ask_pdf":               "Send the program as a PDF document.",
		"pdf_saved":             "Program document saved.",
		"pdf_invalid":           "That does not look like a PDF. Please send a PDF document.",
		"pdf_none":              "The program document is not available yet.",
		"pdf_cleared":           "Program document removed.",
		"ask_geo":               "Send the venue location pin.",
		"geo_saved":             "Venue location saved.",
		"geo_none":              "The venue location is not available yet.",
		"geo_cleared":           "Venue location removed.",
		"ask_question":          "Type your question for the organizers.",
		"question_saved":        "Your question has been sent. Thank you!",
		"questions_empty":       "No questions yet.",
		"survey_prompt":         "%s has finished. How was it?",
		"rating_saved":          "Thanks for your rating!",
		"ask_feedback_comment":  "Would you like to leave a comment?",
		"ask_comment_text":      "Type your comment.",
		"feedback_saved":        "Thank you for your feedback!",
		"feedback_empty":        "No feedback yet.",
		"feedback_summary":      "Good: %d\nNeutral: %d\nBad: %d",
		"people_title":          "Attendees:",
		"people_empty":          "No attendees registered yet.",
		"admin_password":        "Enter the admin password.",
		"admin_granted":         "Admin access granted.",
		"admin_denied":          "Wrong password.",
		"admin_menu":            "Admin panel:",
		"admin_exit":            "You left the admin panel.",
		"ask_meeting_name":      "Send the event name.",
		"ask_meeting_location":  "Send the venue.",
		"ask_meeting_date":      "Send the date.",
		"meeting_created":       "Event created.",
		"confirm_delete":        "Delete this event and everything attached to it?",
		"meeting_deleted":       "Event deleted.",
		"confirm_finish":        "Finish this event and send the survey to attendees?",
		"meeting_finished":      "Event finished. The survey has been sent.",
		"notify_scope":          "Who should receive the announcement?",
		"notify_scope_all":      "Everyone",
		"notify_scope_none":     "Cancel",
		"ask_notification":      "Type the announcement text.",
		"notification_sent":     "Announcement delivered to %d of %d recipients.",
		"finished_meetings":     "Finished events:",
		"no_finished_meetings":  "No finished events.",
		"error_generic":         "Something went wrong. Please try again.",
		"not_found":             "This item no longer exists.",
		"invalid_input":         "That is not what I expected here. Please try again.",
		"unknown_action":        "This button is no longer valid.",
		"btn_agenda":            "Program",
		"btn_wifi":              "WiFi",
		"btn_pdf":               "Program PDF",
		"btn_photos":            "Venue photos",
		"btn_map":               "Map",
		"btn_people":            "Attendees",
		"btn_ask_question":      "Ask a question",
		"btn_follow":            "Register",
		"btn_unfollow":          "Withdraw",
		"btn_back":              "Back",
		"btn_edit":              "Edit",
		"btn_delete":            "Delete",
		"btn_clear":             "Remove",
		"btn_add":               "Add",
		"btn_finish":            "Finish event",
		"btn_yes":               "Yes",
		"btn_no":                "No",
		"btn_skip":              "Skip",
		"btn_share_contact":     "Share contact",
		"btn_wifi_network":      "Network name",
		"btn_wifi_password":     "Password",
		"btn_fill_profile":      "Fill in profile",
		"btn_edit_profile":      "Edit profile",
		"btn_edit_name":         "Name",
		"btn_edit_phone":        "Phone",
		"btn_edit_company":      "Company",
		"btn_edit_date":         "Date",
		"btn_edit_location":     "Venue",
		"btn_edit_title":        "Title",
		"btn_edit_start":        "Start time",
		"btn_edit_end":          "End time",
		"btn_edit_desc":         "Description",
		"btn_add_meeting":       "New event",
		"btn_manage":            "Manage events",
		"btn_questions":         "Questions",
		"btn_feedback":          "Feedback",
		"btn_notify":            "Announcement",
		"btn_exit_admin":        "Exit admin panel",
		"btn_rate_good":         "Good",
		"btn_rate_neutral":      "So-so",
		"btn_rate_bad":          "Bad",
	},
	"ru": {
		"choose_language":       "Пожалуйста, выберите язык:",
		"language_saved":        "Язык сохранён.",
		"welcome":               "С возвращением!",
		"main_menu":             "Что вы хотите сделать?",
		"menu_select_meeting":   "Мероприятия",
		"menu_my_profile":       "Мой профиль",
		"menu_change_language":  "Сменить язык",
		"ask_name":              "Как вас зовут?",
		"ask_phone":             "Отправьте номер телефона или поделитесь контактом.",
		"ask_company":           "Какую компанию вы представляете?",
		"profile_saved":         "Ваш профиль сохранён.",
		"profile_view":          "Имя: %s\nТелефон: %s\nКомпания: %s",
		"profile_empty":         "Ваш профиль пуст. Заполните его, чтобы регистрироваться на мероприятия.",
		"profile_incomplete":    "Сначала заполните профиль, пожалуйста.",
		"ask_new_value":         "Отправьте новое значение.",
		"value_updated":         "Обновлено.",
		"meetings_list":         "Ближайшие мероприятия:",
		"no_meetings":           "Мероприятий пока нет.",
		"meeting_details":       "%s\nКогда: %s\nГде: %s",
		"followed":              "Вы зарегистрированы. До встречи!",
		"unfollowed":            "Регистрация отменена.",
		"wifi_info":             "Сеть: %s\nПароль: %s",
		"wifi_none":             "Данные WiFi пока недоступны.",
		"ask_wifi_network":      "Отправьте название сети.",
		"ask_wifi_password":     "Отправьте пароль сети.",
		"wifi_saved":            "Данные WiFi сохранены.",
		"wifi_cleared":          "Данные WiFi удалены.",
		"agenda_title":          "Программа:",
		"agenda_empty":          "Программа ещё не опубликована.",
		"agenda_item":           "%s - %s  %s",
		"ask_agenda_title":      "Отправьте название сессии.",
		"ask_agenda_start":      "Отправьте время начала, например 09:30.",
		"ask_agenda_end":        "Отправьте время окончания.",
		"ask_agenda_desc":       "Отправьте описание или пропустите этот шаг.",
		"agenda_item_saved":     "Пункт программы сохранён.",
		"agenda_item_deleted":   "Пункт программы удалён.",
		"agenda_cleared":        "Программа очищена.",
		"alert_on":              "Напоминание для этой сессии включено.",
		"alert_off":             "Напоминание для этой сессии выключено.",
		"photos_none":           "Фотографий площадки пока нет.",
		"ask_photo":             "Отправьте фотографии площадки. Они сохраняются по мере получения.",
		"photo_saved":           "Фото сохранено. Отправьте ещё или вернитесь назад.",
		"photos_cleared":        "Фотографии площадки удалены.",
		"ask_pdf":               "Отправьте программу PDF-документом.",
		"pdf_saved":             "Документ программы сохранён.",
		"pdf_invalid":           "Это не похоже на PDF. Пожалуйста, отправьте PDF-документ.",
		"pdf_none":              "Документ программы пока недоступен.",
		"pdf_cleared":           "Документ программы удалён.",
		"ask_geo":               "Отправьте геолокацию площадки.",
		"geo_saved":             "Геолокация площадки сохранена.",
		"geo_none":              "Геолокация площадки пока недоступна.",
		"geo_cleared":           "Геолокация площадки удалена.",
		"ask_question":          "Напишите свой вопрос организаторам.",
		"question_saved":        "Ваш вопрос отправлен. Спасибо!",
		"questions_empty":       "Вопросов пока нет.",
		"survey_prompt":         "%s завершилось. Как вам?",
		"rating_saved":          "Спасибо за оценку!",
		"ask_feedback_comment":  "Хотите оставить комментарий?",
		"ask_comment_text":      "Напишите свой комментарий.",
		"feedback_saved":        "Спасибо за ваш отзыв!",
		"feedback_empty":        "Отзывов пока нет.",
		"feedback_summary":      "Хорошо: %d\nНейтрально: %d\nПлохо: %d",
		"people_title":          "Участники:",
		"people_empty":          "Участников пока нет.",
		"admin_password":        "Введите пароль администратора.",
		"admin_granted":         "Доступ администратора предоставлен.",
		"admin_denied":          "Неверный пароль.",
		"admin_menu":            "Панель администратора:",
		"admin_exit":            "Вы вышли из панели администратора.",
		"ask_meeting_name":      "Отправьте название мероприятия.",
		"ask_meeting_location":  "Отправьте место проведения.",
		"ask_meeting_date":      "Отправьте дату.",
		"meeting_created":       "Мероприятие создано.",
		"confirm_delete":        "Удалить это мероприятие и всё, что к нему привязано?",
		"meeting_deleted":       "Мероприятие удалено.",
		"confirm_finish":        "Завершить мероприятие и отправить опрос участникам?",
		"meeting_finished":      "Мероприятие завершено. Опрос отправлен.",
		"notify_scope":          "Кому отправить объявление?",
		"notify_scope_all":      "Всем",
		"notify_scope_none":     "Отмена",
		"ask_notification":      "Напишите текст объявления.",
		"notification_sent":     "Объявление доставлено %d из %d получателей.",
		"finished_meetings":     "Завершённые мероприятия:",
		"no_finished_meetings":  "Завершённых мероприятий нет.",
		"error_generic":         "Что-то пошло не так. Попробуйте ещё раз.",
		"not_found":             "Этот элемент больше не существует.",
		"invalid_input":         "Я ожидал здесь другое. Попробуйте ещё раз.",
		"unknown_action":        "Эта кнопка больше не действует.",
		"btn_agenda":            "Программа",
		"btn_wifi":              "WiFi",
		"btn_pdf":               "Программа PDF",
		"btn_photos":            "Фото площадки",
		"btn_map":               "Карта",
		"btn_people":            "Участники",
		"btn_ask_question":      "Задать вопрос",
		"btn_follow":            "Зарегистрироваться",
		"btn_unfollow":          "Отменить регистрацию",
		"btn_back":              "Назад",
		"btn_edit":              "Изменить",
		"btn_delete":            "Удалить",
		"btn_clear":             "Убрать",
		"btn_add":               "Добавить",
		"btn_finish":            "Завершить мероприятие",
		"btn_yes":               "Да",
		"btn_no":                "Нет",
		"btn_skip":              "Пропустить",
		"btn_share_contact":     "Поделиться контактом",
		"btn_wifi_network":      "Название сети",
		"btn_wifi_password":     "Пароль",
		"btn_fill_profile":      "Заполнить профиль",
		"btn_edit_profile":      "Изменить профиль",
		"btn_edit_name":         "Имя",
		"btn_edit_phone":        "Телефон",
		"btn_edit_company":      "Компания",
		"btn_edit_date":         "Дата",
		"btn_edit_location":     "Место",
		"btn_edit_title":        "Название",
		"btn_edit_start":        "Время начала",
		"btn_edit_end":          "Время окончания",
		"btn_edit_desc":         "Описание",
		"btn_add_meeting":       "Новое мероприятие",
		"btn_manage":            "Управление мероприятиями",
		"btn_questions":         "Вопросы",
		"btn_feedback":          "Отзывы",
		"btn_notify":            "Объявление",
		"btn_exit_admin":        "Выйти из панели",
		"btn_rate_good":         "Хорошо",
		"btn_rate_neutral":      "Так себе",
		"btn_rate_bad":          "Плохо",
	},
	"uz": {
		"choose_language":       "Iltimos, tilni tanlang:",
		"language_saved":        "Til saqlandi.",
		"welcome":               "Xush kelibsiz!",
		"main_menu":             "Nima qilmoqchisiz?",
		"menu_select_meeting":   "Tadbirlar",
		"menu_my_profile":       "Mening profilim",
		"menu_change_language":  "Tilni o'zgartirish",
		"ask_name":              "Ismingiz nima?",
		"ask_phone":             "Telefon raqamingizni yuboring yoki kontaktni ulashing.",
		"ask_company":           "Qaysi kompaniyani vakili sifatida kelgansiz?",
		"profile_saved":         "Profilingiz saqlandi.",
		"profile_view":          "Ism: %s\nTelefon: %s\nKompaniya: %s",
		"profile_empty":         "Profilingiz bo'sh. Tadbirlarga yozilish uchun uni to'ldiring.",
		"profile_incomplete":    "Avval profilingizni to'ldiring, iltimos.",
		"ask_new_value":         "Yangi qiymatni yuboring.",
		"value_updated":         "Yangilandi.",
		"meetings_list":         "Yaqin tadbirlar:",
		"no_meetings":           "Hozircha tadbirlar yo'q.",
		"meeting_details":       "%s\nQachon: %s\nQayerda: %s",
		"followed":              "Ro'yxatdan o'tdingiz. Ko'rishguncha!",
		"unfollowed":            "Ro'yxatdan o'tish bekor qilindi.",
		"wifi_info":             "Tarmoq: %s\nParol: %s",
		"wifi_none":             "WiFi ma'lumotlari hali mavjud emas.",
		"ask_wifi_network":      "Tarmoq nomini yuboring.",
		"ask_wifi_password":     "Tarmoq parolini yuboring.",
		"wifi_saved":            "WiFi ma'lumotlari saqlandi.",
		"wifi_cleared":          "WiFi ma'lumotlari o'chirildi.",
		"agenda_title":          "Dastur:",
		"agenda_empty":          "Dastur hali e'lon qilinmagan.",
		"agenda_item":           "%s - %s  %s",
		"ask_agenda_title":      "Sessiya nomini yuboring.",
		"ask_agenda_start":      "Boshlanish vaqtini yuboring, masalan 09:30.",
		"ask_agenda_end":        "Tugash vaqtini yuboring.",
		"ask_agenda_desc":       "Tavsif yuboring yoki bu bosqichni o'tkazib yuboring.",
		"agenda_item_saved":     "Dastur bandi saqlandi.",
		"agenda_item_deleted":   "Dastur bandi o'chirildi.",
		"agenda_cleared":        "Dastur tozalandi.",
		"alert_on":              "Bu sessiya uchun eslatma yoqildi.",
		"alert_off":             "Bu sessiya uchun eslatma o'chirildi.",
		"photos_none":           "Hozircha joy suratlari yo'q.",
		"ask_photo":             "Joy suratlarini yuboring. Ular kelishi bilan saqlanadi.",
		"photo_saved":           "Surat saqlandi. Yana yuboring yoki orqaga qayting.",
		"photos_cleared":        "Joy suratlari o'chirildi.",
		"ask_pdf":               "Dasturni PDF hujjat sifatida yuboring.",
		"pdf_saved":             "Dastur hujjati saqlandi.",
		"pdf_invalid":           "Bu PDF ga o'xshamaydi. Iltimos, PDF hujjat yuboring.",
		"pdf_none":              "Dastur hujjati hali mavjud emas.",
		"pdf_cleared":           "Dastur hujjati o'chirildi.",
		"ask_geo":               "Joyning geolokatsiyasini yuboring.",
		"geo_saved":             "Joy geolokatsiyasi saqlandi.",
		"geo_none":              "Joy geolokatsiyasi hali mavjud emas.",
		"geo_cleared":           "Joy geolokatsiyasi o'chirildi.",
		"ask_question":          "Tashkilotchilarga savolingizni yozing.",
		"question_saved":        "Savolingiz yuborildi. Rahmat!",
		"questions_empty":       "Hozircha savollar yo'q.",
		"survey_prompt":         "%s yakunlandi. Sizga qanday yoqdi?",
		"rating_saved":          "Bahoyingiz uchun rahmat!",
		"ask_feedback_comment":  "Izoh qoldirmoqchimisiz?",
		"ask_comment_text":      "Izohingizni yozing.",
		"feedback_saved":        "Fikringiz uchun rahmat!",
		"feedback_empty":        "Hozircha fikrlar yo'q.",
		"feedback_summary":      "Yaxshi: %d\nO'rtacha: %d\nYomon: %d",
		"people_title":          "Ishtirokchilar:",
		"people_empty":          "Hozircha ishtirokchilar yo'q.",
		"admin_password":        "Administrator parolini kiriting.",
		"admin_granted":         "Administrator huquqi berildi.",
		"admin_denied":          "Parol noto'g'ri.",
		"admin_menu":            "Administrator paneli:",
		"admin_exit":            "Administrator panelidan chiqdingiz.",
		"ask_meeting_name":      "Tadbir nomini yuboring.",
		"ask_meeting_location":  "O'tkazish joyini yuboring.",
		"ask_meeting_date":      "Sanani yuboring.",
		"meeting_created":       "Tadbir yaratildi.",
		"confirm_delete":        "Bu tadbirni va unga bog'liq hamma narsani o'chirasizmi?",
		"meeting_deleted":       "Tadbir o'chirildi.",
		"confirm_finish":        "Tadbirni yakunlab, ishtirokchilarga so'rovnoma yuborilsinmi?",
		"meeting_finished":      "Tadbir yakunlandi. So'rovnoma yuborildi.",
		"notify_scope":          "E'lon kimga yuborilsin?",
		"notify_scope_all":      "Hammaga",
		"notify_scope_none":     "Bekor qilish",
		"ask_notification":      "E'lon matnini yozing.",
		"notification_sent":     "E'lon %d / %d qabul qiluvchiga yetkazildi.",
		"finished_meetings":     "Yakunlangan tadbirlar:",
		"no_finished_meetings":  "Yakunlangan tadbirlar yo'q.",
		"error_generic":         "Nimadir xato ketdi. Qayta urinib ko'ring.",
		"not_found":             "Bu element endi mavjud emas.",
		"invalid_input":         "Bu yerda boshqa narsa kutilgan edi. Qayta urinib ko'ring.",
		"unknown_action":        "Bu tugma endi amal qilmaydi.",
		"btn_agenda":            "Dastur",
		"btn_wifi":              "WiFi",
		"btn_pdf":               "Dastur PDF",
		"btn_photos":            "Joy suratlari",
		"btn_map":               "Xarita",
		"btn_people":            "Ishtirokchilar",
		"btn_ask_question":      "Savol berish",
		"btn_follow":            "Ro'yxatdan o'tish",
		"btn_unfollow":          "Bekor qilish",
		"btn_back":              "Orqaga",
		"btn_edit":              "O'zgartirish",
		"btn_delete":            "O'chirish",
		"btn_clear":             "Olib tashlash",
		"btn_add":               "Qo'shish",
		"btn_finish":            "Tadbirni yakunlash",
		"btn_yes":               "Ha",
		"btn_no":                "Yo'q",
		"btn_skip":              "O'tkazib yuborish",
		"btn_share_contact":     "Kontaktni ulashish",
		"btn_wifi_network":      "Tarmoq nomi",
		"btn_wifi_password":     "Parol",
		"btn_fill_profile":      "Profilni to'ldirish",
		"btn_edit_profile":      "Profilni o'zgartirish",
		"btn_edit_name":         "Ism",
		"btn_edit_phone":        "Telefon",
		"btn_edit_company":      "Kompaniya",
		"btn_edit_date":         "Sana",
		"btn_edit_location":     "Joy",
		"btn_edit_title":        "Nomi",
		"btn_edit_start":        "Boshlanish vaqti",
		"btn_edit_end":          "Tugash vaqti",
		"btn_edit_desc":         "Tavsif",
		"btn_add_meeting":       "Yangi tadbir",
		"btn_manage":            "Tadbirlarni boshqarish",
		"btn_questions":         "Savollar",
		"btn_feedback":          "Fikrlar",
		"btn_notify":            "E'lon",
		"btn_exit_admin":        "Paneldan chiqish",
		"btn_rate_good":         "Yaxshi",
		"btn_rate_neutral":      "O'rtacha",
		"btn_rate_bad":          "Yomon",
	},
}

// Text looks up a message in the requested language, formatting args into
// the template. Unknown languages and untranslated keys fall back to
// English; an unknown key is returned verbatim so it is visible in the chat.
func Text(lang, key string, args ...any) string {
	msgs, ok := catalog[lang]
	if !ok {
		msgs = catalog["en"]
	}
	template, ok := msgs[key]
	if !ok {
		template, ok = catalog["en"][key]
		if !ok {
			return key
		}
	}
	if len(args) == 0 {
		return template
	}
	return fmt.Sprintf(template, args...)
}

// Languages returns the supported language codes in display order.
func Languages() []string {
	return []string{"en", "ru", "uz"}
}
