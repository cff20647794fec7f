package survey

var diabetesQuestions = []Question{
	{ID: 1, Label: "Full Name:", Type: TypeText},
	{ID: 2, Label: "Age:", Type: TypeNumber},
	{ID: 3, Label: "Sex:", Type: TypeChoice, Options: []string{"Male", "Female"}},
	{ID: 4, Label: "Date of Birth (DD/MM/YYYY):", Type: TypeDate},
	{ID: 5, Label: "Marital Status:", Type: TypeText},
	{ID: 6, Label: "Occupation:", Type: TypeText},
	{ID: 7, Label: "Phone Number:", Type: TypeText},
	{ID: 8, Label: "Location:", Type: TypeText},
	{ID: 9, Label: "Have you ever been diagnosed with diabetes?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 10, Label: "If yes, when? (YYYY-MM-DD)", Type: TypeDate, RequiredWhen: &RequiredWhen{QuestionID: 9, Values: []string{"Yes"}}},
	{ID: 11, Label: "Type of Diabetes:", Type: TypeChoice, Options: []string{"Type 1", "Type 2", "Gestational", "Not sure"}},
	{ID: 12, Label: "Family history of diabetes?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 13, Label: "If yes, who?", Type: TypeText, RequiredWhen: &RequiredWhen{QuestionID: 12, Values: []string{"Yes"}}},
	{ID: 14, Label: "Are you currently on diabetes medications?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 15, Label: "If yes, which ones?", Type: TypeText, RequiredWhen: &RequiredWhen{QuestionID: 14, Values: []string{"Yes"}}},
	{ID: 16, Label: "Have you ever been on insulin?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 17, Label: "Any other diagnosed health conditions?", Type: TypeText},
	{ID: 18, Label: "Allergies (food or drug):", Type: TypeText},
	{ID: 19, Label: "Smoking:", Type: TypeChoice, Options: []string{"Never", "Former smoker", "Current smoker"}},
	{ID: 20, Label: "Alcohol:", Type: TypeChoice, Options: []string{"None", "Occasionally", "Frequently"}},
	{ID: 21, Label: "Physical activity:", Type: TypeChoice, Options: []string{"None", "1-2 times/week", "3-4 times/week", "Daily"}},
	{ID: 22, Label: "What type of activity?", Type: TypeText},
	{ID: 23, Label: "Sleep patterns:", Type: TypeChoice, Options: []string{"Poor", "Fair", "Good"}},
	{ID: 24, Label: "Average hours per night:", Type: TypeNumber},
	{ID: 25, Label: "Stress level:", Type: TypeChoice, Options: []string{"Low", "Moderate", "High"}},
	{ID: 26, Label: "How many meals do you eat per day?", Type: TypeNumber},
	{ID: 27, Label: "Do you eat late at night?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 28, Label: "How often do you eat Rice/Yam/Cassava foods?", Type: TypeChoice, Options: []string{"Daily", "Weekly", "Rarely"}},
	{ID: 29, Label: "How often do you eat Vegetables/leafy greens?", Type: TypeChoice, Options: []string{"Daily", "Weekly", "Rarely"}},
	{ID: 30, Label: "How often do you eat Sugary drinks/snacks?", Type: TypeChoice, Options: []string{"Daily", "Weekly", "Rarely"}},
	{ID: 31, Label: "Symptoms in past 3 months (tick all that apply):", Type: TypeMultiSelect, Options: []string{
		"Frequent urination", "Excessive thirst", "Unexplained weight loss", "Constant hunger",
		"Blurred vision", "Slow-healing wounds", "Tingling or numbness in hands/feet",
		"Fatigue/weakness", "Recurrent infections", "Headaches/dizziness",
		"Sleep disturbances", "Increased irritability or mood swings",
	}},
	{ID: 32, Label: "Last known blood sugar reading (Fasting):", Type: TypeText},
	{ID: 33, Label: "Last known HbA1c (if tested):", Type: TypeText},
	{ID: 34, Label: "Current weight (kg):", Type: TypeNumber},
	{ID: 35, Label: "Height (cm):", Type: TypeNumber},
	{ID: 36, Label: "Waist circumference (cm):", Type: TypeNumber},
	{ID: 37, Label: "Blood pressure (last reading, if known):", Type: TypeText},
	{ID: 38, Label: "What are your main health goals?", Type: TypeTextArea},
	{ID: 39, Label: "What challenges do you face in managing your diabetes?", Type: TypeTextArea},
}

var hbpQuestions = []Question{
	{ID: 1, Label: "Full Name:", Type: TypeText},
	{ID: 2, Label: "Date of Birth (DD/MM/YYYY):", Type: TypeDate},
	{ID: 3, Label: "Age:", Type: TypeNumber},
	{ID: 4, Label: "Gender:", Type: TypeChoice, Options: []string{"Male", "Female", "Other"}},
	{ID: 5, Label: "Marital Status:", Type: TypeText},
	{ID: 6, Label: "Address:", Type: TypeText},
	{ID: 7, Label: "Phone Number:", Type: TypeText},
	{ID: 8, Label: "Email:", Type: TypeEmail},
	{ID: 9, Label: "Occupation:", Type: TypeText},
	{ID: 10, Label: "Do you have a history of high blood pressure (hypertension)?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 11, Label: "If yes, for how long?", Type: TypeText, RequiredWhen: &RequiredWhen{QuestionID: 10, Values: []string{"Yes"}}},
	{ID: 12, Label: "Family history of high blood pressure?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 13, Label: "If yes, indicate relation:", Type: TypeText, RequiredWhen: &RequiredWhen{QuestionID: 12, Values: []string{"Yes"}}},
	{ID: 14, Label: "Other family health conditions:", Type: TypeTextArea},
	{ID: 15, Label: "Personal medical history:", Type: TypeTextArea},
	{ID: 16, Label: "Do you take medication for high blood pressure?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 17, Label: "If yes, please list:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 16, Values: []string{"Yes"}}},
	{ID: 18, Label: "Any herbal remedies or supplements currently used?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 19, Label: "If yes, specify:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 18, Values: []string{"Yes"}}},
	{ID: 20, Label: "How often do you eat fruits/vegetables?", Type: TypeChoice, Options: []string{"Daily", "Occasionally", "Rarely"}},
	{ID: 21, Label: "Salt intake:", Type: TypeChoice, Options: []string{"Low", "Moderate", "High"}},
	{ID: 22, Label: "Do you eat processed/fast food regularly?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 23, Label: "Alcohol consumption:", Type: TypeChoice, Options: []string{"None", "Occasionally", "Frequently"}},
	{ID: 24, Label: "Do you exercise?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 25, Label: "If yes, what type and how often?", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 24, Values: []string{"Yes"}}},
	{ID: 26, Label: "Do you smoke?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 27, Label: "If yes, how many sticks per day?", Type: TypeText, RequiredWhen: &RequiredWhen{QuestionID: 26, Values: []string{"Yes"}}},
	{ID: 28, Label: "How would you rate your daily stress?", Type: TypeChoice, Options: []string{"Low", "Moderate", "High"}},
	{ID: 29, Label: "Common stress triggers:", Type: TypeTextArea},
	{ID: 30, Label: "Hours of sleep per night:", Type: TypeNumber},
	{ID: 31, Label: "Sleep quality:", Type: TypeChoice, Options: []string{"Good", "Fair", "Poor"}},
	{ID: 32, Label: "Symptoms (tick all that apply):", Type: TypeMultiSelect, Options: []string{
		"Headaches", "Dizziness", "Blurred vision", "Chest pain", "Shortness of breath",
		"Irregular heartbeat", "Nosebleeds", "Fatigue or weakness", "Swelling in legs, ankles, or feet",
		"Difficulty sleeping", "Frequent urination at night",
	}},
	{ID: 33, Label: "Current Blood Pressure Reading:", Type: TypeText},
	{ID: 34, Label: "Heart Rate (Pulse):", Type: TypeNumber},
	{ID: 35, Label: "Weight (kg):", Type: TypeNumber},
	{ID: 36, Label: "Height (cm):", Type: TypeNumber},
	{ID: 37, Label: "Body Mass Index (BMI):", Type: TypeText},
	{ID: 38, Label: "Waist Circumference (cm):", Type: TypeNumber},
	{ID: 39, Label: "What do you hope to achieve by managing your blood pressure?", Type: TypeTextArea},
}

var weightQuestions = []Question{
	{ID: 1, Label: "Full Name:", Type: TypeText},
	{ID: 2, Label: "Date of Birth (DD/MM/YYYY):", Type: TypeDate},
	{ID: 3, Label: "Age:", Type: TypeNumber},
	{ID: 4, Label: "Gender:", Type: TypeChoice, Options: []string{"Male", "Female", "Other"}},
	{ID: 5, Label: "Marital Status:", Type: TypeText},
	{ID: 6, Label: "Address:", Type: TypeText},
	{ID: 7, Label: "Phone Number:", Type: TypeText},
	{ID: 8, Label: "Email:", Type: TypeEmail},
	{ID: 9, Label: "Occupation:", Type: TypeText},
	{ID: 10, Label: "Family history of obesity?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 11, Label: "If yes, indicate relation:", Type: TypeText, RequiredWhen: &RequiredWhen{QuestionID: 10, Values: []string{"Yes"}}},
	{ID: 12, Label: "Family history of related health conditions:", Type: TypeTextArea},
	{ID: 13, Label: "Personal medical history:", Type: TypeTextArea},
	{ID: 14, Label: "Are you currently on medication?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 15, Label: "If yes, list:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 14, Values: []string{"Yes"}}},
	{ID: 16, Label: "Any herbal remedies, teas, or supplements used for weight management?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 17, Label: "If yes, specify:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 16, Values: []string{"Yes"}}},
	{ID: 18, Label: "Meals per day:", Type: TypeNumber},
	{ID: 19, Label: "Do you eat breakfast daily?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 20, Label: "Portion sizes:", Type: TypeChoice, Options: []string{"Small", "Moderate", "Large"}},
	{ID: 21, Label: "Snacking habits:", Type: TypeChoice, Options: []string{"Rarely", "Sometimes", "Often"}},
	{ID: 22, Label: "Fast food/processed food intake:", Type: TypeChoice, Options: []string{"Rarely", "Sometimes", "Often"}},
	{ID: 23, Label: "Sugary drink intake:", Type: TypeChoice, Options: []string{"Rarely", "Sometimes", "Often"}},
	{ID: 24, Label: "Alcohol consumption:", Type: TypeChoice, Options: []string{"None", "Occasionally", "Frequently"}},
	{ID: 25, Label: "Do you exercise regularly?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 26, Label: "If yes, what type and how often?", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 25, Values: []string{"Yes"}}},
	{ID: 27, Label: "If no, main barriers:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 25, Values: []string{"No"}}},
	{ID: 28, Label: "Smoking:", Type: TypeChoice, Options: []string{"Current smoker", "Former smoker", "Never smoked"}},
	{ID: 29, Label: "Hours of sleep per night:", Type: TypeNumber},
	{ID: 30, Label: "Sleep quality:", Type: TypeChoice, Options: []string{"Good", "Fair", "Poor"}},
	{ID: 31, Label: "Daily stress:", Type: TypeChoice, Options: []string{"Low", "Moderate", "High"}},
	{ID: 32, Label: "Common stress triggers:", Type: TypeTextArea},
	{ID: 33, Label: "Tick all that apply:", Type: TypeMultiSelect, Options: []string{
		"Excessive weight gain", "Difficulty losing weight", "Constant fatigue",
		"Shortness of breath", "Snoring", "Joint pain", "Swelling in legs/ankles",
		"Emotional eating", "Depression", "Low self-esteem", "Irregular menstrual cycle",
		"Erectile dysfunction",
	}},
	{ID: 34, Label: "Current Weight (kg):", Type: TypeNumber},
	{ID: 35, Label: "Height (cm):", Type: TypeNumber},
	{ID: 36, Label: "Body Mass Index (BMI):", Type: TypeText},
	{ID: 37, Label: "Waist Circumference (cm):", Type: TypeNumber},
	{ID: 38, Label: "Hip Circumference (cm):", Type: TypeNumber},
	{ID: 39, Label: "Waist-to-Hip Ratio:", Type: TypeText},
	{ID: 40, Label: "Blood Pressure:", Type: TypeText},
	{ID: 41, Label: "Heart Rate:", Type: TypeNumber},
	{ID: 42, Label: "What are your main goals in managing obesity?", Type: TypeTextArea},
}

var detoxQuestions = []Question{
	{ID: 1, Label: "Full Name:", Type: TypeText},
	{ID: 2, Label: "Date of Birth (DD/MM/YYYY):", Type: TypeDate},
	{ID: 3, Label: "Age:", Type: TypeNumber},
	{ID: 4, Label: "Gender:", Type: TypeChoice, Options: []string{"Male", "Female", "Other"}},
	{ID: 5, Label: "Marital Status:", Type: TypeText},
	{ID: 6, Label: "Address:", Type: TypeText},
	{ID: 7, Label: "Phone Number:", Type: TypeText},
	{ID: 8, Label: "Email:", Type: TypeEmail},
	{ID: 9, Label: "Occupation:", Type: TypeText},
	{ID: 10, Label: "Do you consider yourself generally healthy?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 11, Label: "If no, explain:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 10, Values: []string{"No"}}},
	{ID: 12, Label: "Family history of chronic illnesses:", Type: TypeTextArea},
	{ID: 13, Label: "Personal medical history:", Type: TypeTextArea},
	{ID: 14, Label: "Current medications or supplements:", Type: TypeTextArea},
	{ID: 15, Label: "Meals per day:", Type: TypeNumber},
	{ID: 16, Label: "Water intake (glasses per day):", Type: TypeNumber},
	{ID: 17, Label: "Fruits/vegetables:", Type: TypeChoice, Options: []string{"Daily", "Occasionally", "Rarely"}},
	{ID: 18, Label: "Processed/packaged food intake:", Type: TypeChoice, Options: []string{"Rarely", "Sometimes", "Often"}},
	{ID: 19, Label: "Salt intake:", Type: TypeChoice, Options: []string{"Low", "Moderate", "High"}},
	{ID: 20, Label: "Sugar/sweet drinks:", Type: TypeChoice, Options: []string{"Rarely", "Sometimes", "Often"}},
	{ID: 21, Label: "Alcohol:", Type: TypeChoice, Options: []string{"None", "Occasionally", "Frequently"}},
	{ID: 22, Label: "Caffeine:", Type: TypeChoice, Options: []string{"None", "Occasionally", "Daily"}},
	{ID: 23, Label: "Do you exercise regularly?", Type: TypeChoice, Options: []string{"Yes", "No"}},
	{ID: 24, Label: "If yes, type and frequency:", Type: TypeTextArea, RequiredWhen: &RequiredWhen{QuestionID: 23, Values: []string{"Yes"}}},
	{ID: 25, Label: "Average hours of sleep:", Type: TypeNumber},
	{ID: 26, Label: "Sleep quality:", Type: TypeChoice, Options: []string{"Good", "Fair", "Poor"}},
	{ID: 27, Label: "Daily stress:", Type: TypeChoice, Options: []string{"Low", "Moderate", "High"}},
	{ID: 28, Label: "Stress management methods:", Type: TypeTextArea},
	{ID: 29, Label: "Smoking:", Type: TypeChoice, Options: []string{"Never", "Former smoker", "Current smoker"}},
	{ID: 30, Label: "Recreational drugs:", Type: TypeChoice, Options: []string{"Never", "Occasionally", "Frequently"}},
	{ID: 31, Label: "Past 6 months symptoms (tick all that apply):", Type: TypeMultiSelect, Options: []string{
		"Fatigue", "Frequent headaches", "Digestive problems", "Skin breakouts",
		"Brain fog", "Joint or muscle aches", "Unexplained weight gain/loss",
		"Irregular menstrual cycle", "Mood swings", "Poor sleep", "Frequent colds or infections",
	}},
	{ID: 32, Label: "Weight (kg):", Type: TypeNumber},
	{ID: 33, Label: "Height (cm):", Type: TypeNumber},
	{ID: 34, Label: "BMI:", Type: TypeText},
	{ID: 35, Label: "Waist circumference (cm):", Type: TypeNumber},
	{ID: 36, Label: "Blood pressure:", Type: TypeText},
	{ID: 37, Label: "Resting heart rate:", Type: TypeNumber},
	{ID: 38, Label: "What do you want to achieve with a detox & prevention plan?", Type: TypeTextArea},
}
